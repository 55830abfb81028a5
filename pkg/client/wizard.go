package client

import (
	"context"
	"errors"
	"time"
)

var (
	ErrWizardIncomplete = errors.New("tenant, service, staff, date and time must all be selected")
	ErrNoSessionUser    = errors.New("no resolvable user identity in session")
	ErrPastDate         = errors.New("date must not be before today")
)

// BookingWizard drives the sequential appointment flow: tenant, then
// service, then staff, then date and time, then submit. Downstream
// selections are cleared whenever the tenant changes.
type BookingWizard struct {
	client *Client
	userID string

	tenantID  string
	serviceID string
	staffID   string
	date      time.Time
	hour      int
	minute    int
	hasDate   bool
	hasTime   bool
}

// NewBookingWizard starts a wizard for the given session user.
func NewBookingWizard(c *Client, userID string) *BookingWizard {
	return &BookingWizard{client: c, userID: userID}
}

// SelectTenant picks the business to book with and resets any service
// and staff chosen under a previous tenant.
func (w *BookingWizard) SelectTenant(tenantID string) {
	if tenantID != w.tenantID {
		w.serviceID = ""
		w.staffID = ""
	}
	w.tenantID = tenantID
}

func (w *BookingWizard) SelectService(serviceID string) {
	w.serviceID = serviceID
}

// SelectStaff picks the staff member. The staff list is filtered by
// tenant only, so any of the tenant's staff may be paired with any
// service.
func (w *BookingWizard) SelectStaff(staffID string) {
	w.staffID = staffID
}

// Tenants lists the businesses available to book with.
func (w *BookingWizard) Tenants(ctx context.Context) ([]Tenant, error) {
	return w.client.Tenants(ctx)
}

// Services lists the selected tenant's services. Empty until a tenant
// is selected.
func (w *BookingWizard) Services(ctx context.Context) ([]Service, error) {
	if w.tenantID == "" {
		return nil, nil
	}
	return w.client.Services(ctx, w.tenantID)
}

// StaffList lists the selected tenant's staff. Empty until a tenant is
// selected.
func (w *BookingWizard) StaffList(ctx context.Context) ([]Staff, error) {
	if w.tenantID == "" {
		return nil, nil
	}
	return w.client.StaffList(ctx, w.tenantID)
}

// SetDate picks the booking day. Days before today are rejected; the
// time of day is checked nowhere, so today with an already-passed hour
// goes through.
func (w *BookingWizard) SetDate(d time.Time) error {
	today := startOfDay(time.Now().In(d.Location()))
	if startOfDay(d).Before(today) {
		return ErrPastDate
	}
	w.date = d
	w.hasDate = true
	return nil
}

func (w *BookingWizard) SetTime(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return errors.New("time of day out of range")
	}
	w.hour = hour
	w.minute = minute
	w.hasTime = true
	return nil
}

// Selection reports the current tenant, service and staff choices.
func (w *BookingWizard) Selection() (tenantID, serviceID, staffID string) {
	return w.tenantID, w.serviceID, w.staffID
}

// ScheduledAt combines the chosen date and time of day into the
// booking timestamp.
func (w *BookingWizard) ScheduledAt() (time.Time, bool) {
	if !w.hasDate || !w.hasTime {
		return time.Time{}, false
	}
	d := w.date
	return time.Date(d.Year(), d.Month(), d.Day(), w.hour, w.minute, 0, 0, d.Location()), true
}

// Submit validates that every step was completed and creates the
// appointment. On success the appointment caches are invalidated by
// the create call, so the user's list shows the new booking on its
// next read.
func (w *BookingWizard) Submit(ctx context.Context) (*Appointment, error) {
	if w.userID == "" {
		return nil, ErrNoSessionUser
	}
	scheduledAt, ok := w.ScheduledAt()
	if !ok || w.tenantID == "" || w.serviceID == "" || w.staffID == "" {
		return nil, ErrWizardIncomplete
	}

	return w.client.CreateAppointment(ctx, CreateAppointmentPayload{
		UserID:      w.userID,
		ServiceID:   w.serviceID,
		StaffID:     w.staffID,
		TenantID:    w.tenantID,
		ScheduledAt: scheduledAt,
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
