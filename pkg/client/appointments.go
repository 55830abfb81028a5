package client

import "context"

const appointmentEntity = "appointment"

// AppointmentFilter narrows the listing to one user or one tenant.
// The zero value lists everything the caller's role may see.
type AppointmentFilter struct {
	UserID   string
	TenantID string
}

func (f AppointmentFilter) query() string {
	switch {
	case f.UserID != "":
		return "userId=" + f.UserID
	case f.TenantID != "":
		return "tenantId=" + f.TenantID
	default:
		return ""
	}
}

func (c *Client) Appointments(ctx context.Context, filter AppointmentFilter) ([]Appointment, error) {
	q := filter.query()
	path := "/appointment"
	if q != "" {
		path += "?" + q
	}
	key := listKey(appointmentEntity, q)
	if v, ok := c.cache.get(key); ok {
		return v.([]Appointment), nil
	}
	var appts []Appointment
	if err := c.get(ctx, path, &appts); err != nil {
		return nil, err
	}
	c.cache.set(key, appts)
	return appts, nil
}

func (c *Client) Appointment(ctx context.Context, id string) (*Appointment, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	key := itemKey(appointmentEntity, id)
	if v, ok := c.cache.get(key); ok {
		return v.(*Appointment), nil
	}
	var appt Appointment
	if err := c.get(ctx, "/appointment/"+id, &appt); err != nil {
		return nil, err
	}
	c.cache.set(key, &appt)
	return &appt, nil
}

func (c *Client) CreateAppointment(ctx context.Context, payload CreateAppointmentPayload) (*Appointment, error) {
	var appt Appointment
	if err := c.post(ctx, "/appointment", payload, &appt); err != nil {
		return nil, err
	}
	c.cache.invalidateList(appointmentEntity)
	return &appt, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, payload UpdateAppointmentPayload) (*Appointment, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var appt Appointment
	if err := c.patch(ctx, "/appointment/"+id, payload, &appt); err != nil {
		return nil, err
	}
	c.cache.invalidateList(appointmentEntity)
	c.cache.invalidateItem(appointmentEntity, id)
	return &appt, nil
}

// CancelAppointment transitions an appointment to cancelled. Bookings
// are never hard-deleted from any user-facing flow.
func (c *Client) CancelAppointment(ctx context.Context, id string) (*Appointment, error) {
	status := StatusCancelled
	return c.UpdateAppointment(ctx, id, UpdateAppointmentPayload{Status: &status})
}

// DeleteAppointment hard-removes a booking. Administrative use only;
// no interactive flow calls it.
func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	if err := c.delete(ctx, "/appointment/"+id); err != nil {
		return err
	}
	c.cache.invalidateList(appointmentEntity)
	c.cache.invalidateItem(appointmentEntity, id)
	return nil
}
