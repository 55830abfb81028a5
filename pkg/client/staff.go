package client

import "context"

const staffEntity = "staff"

// StaffList lists staff, optionally filtered to one tenant. Pass an
// empty tenantID for the unfiltered (admin) view.
func (c *Client) StaffList(ctx context.Context, tenantID string) ([]Staff, error) {
	filter := ""
	path := "/staff"
	if tenantID != "" {
		filter = "tenantId=" + tenantID
		path += "?" + filter
	}
	key := listKey(staffEntity, filter)
	if v, ok := c.cache.get(key); ok {
		return v.([]Staff), nil
	}
	var staff []Staff
	if err := c.get(ctx, path, &staff); err != nil {
		return nil, err
	}
	c.cache.set(key, staff)
	return staff, nil
}

func (c *Client) Staff(ctx context.Context, id string) (*Staff, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	key := itemKey(staffEntity, id)
	if v, ok := c.cache.get(key); ok {
		return v.(*Staff), nil
	}
	var st Staff
	if err := c.get(ctx, "/staff/"+id, &st); err != nil {
		return nil, err
	}
	c.cache.set(key, &st)
	return &st, nil
}

func (c *Client) CreateStaff(ctx context.Context, payload CreateStaffPayload) (*Staff, error) {
	if !validEmail(payload.Email) {
		return nil, ErrInvalidEmail
	}
	var st Staff
	if err := c.post(ctx, "/staff", payload, &st); err != nil {
		return nil, err
	}
	c.cache.invalidateList(staffEntity)
	return &st, nil
}

func (c *Client) UpdateStaff(ctx context.Context, id string, payload UpdateStaffPayload) (*Staff, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if payload.Email != nil && !validEmail(*payload.Email) {
		return nil, ErrInvalidEmail
	}
	var st Staff
	if err := c.patch(ctx, "/staff/"+id, payload, &st); err != nil {
		return nil, err
	}
	c.cache.invalidateList(staffEntity)
	c.cache.invalidateItem(staffEntity, id)
	return &st, nil
}

func (c *Client) DeleteStaff(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	if err := c.delete(ctx, "/staff/"+id); err != nil {
		return err
	}
	c.cache.invalidateList(staffEntity)
	c.cache.invalidateItem(staffEntity, id)
	return nil
}
