package client

import "context"

const serviceEntity = "service"

// Services lists services, optionally filtered to one tenant.
func (c *Client) Services(ctx context.Context, tenantID string) ([]Service, error) {
	filter := ""
	path := "/service"
	if tenantID != "" {
		filter = "tenantId=" + tenantID
		path += "?" + filter
	}
	key := listKey(serviceEntity, filter)
	if v, ok := c.cache.get(key); ok {
		return v.([]Service), nil
	}
	var services []Service
	if err := c.get(ctx, path, &services); err != nil {
		return nil, err
	}
	c.cache.set(key, services)
	return services, nil
}

func (c *Client) Service(ctx context.Context, id string) (*Service, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	key := itemKey(serviceEntity, id)
	if v, ok := c.cache.get(key); ok {
		return v.(*Service), nil
	}
	var svc Service
	if err := c.get(ctx, "/service/"+id, &svc); err != nil {
		return nil, err
	}
	c.cache.set(key, &svc)
	return &svc, nil
}

func (c *Client) CreateService(ctx context.Context, payload CreateServicePayload) (*Service, error) {
	if !validDuration(payload.Duration) {
		return nil, ErrInvalidDuration
	}
	if !validPrice(payload.Price) {
		return nil, ErrInvalidPrice
	}
	var svc Service
	if err := c.post(ctx, "/service", payload, &svc); err != nil {
		return nil, err
	}
	c.cache.invalidateList(serviceEntity)
	return &svc, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, payload UpdateServicePayload) (*Service, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if payload.Duration != nil && !validDuration(*payload.Duration) {
		return nil, ErrInvalidDuration
	}
	if payload.Price != nil && !validPrice(*payload.Price) {
		return nil, ErrInvalidPrice
	}
	var svc Service
	if err := c.patch(ctx, "/service/"+id, payload, &svc); err != nil {
		return nil, err
	}
	c.cache.invalidateList(serviceEntity)
	c.cache.invalidateItem(serviceEntity, id)
	return &svc, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	if err := c.delete(ctx, "/service/"+id); err != nil {
		return err
	}
	c.cache.invalidateList(serviceEntity)
	c.cache.invalidateItem(serviceEntity, id)
	return nil
}
