package client

import "context"

const planEntity = "plan"

// Plans lists every subscription plan. Results are cached until a plan
// mutation invalidates the list.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	key := listKey(planEntity, "")
	if v, ok := c.cache.get(key); ok {
		return v.([]Plan), nil
	}
	var plans []Plan
	if err := c.get(ctx, "/plan", &plans); err != nil {
		return nil, err
	}
	c.cache.set(key, plans)
	return plans, nil
}

func (c *Client) Plan(ctx context.Context, id string) (*Plan, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	key := itemKey(planEntity, id)
	if v, ok := c.cache.get(key); ok {
		return v.(*Plan), nil
	}
	var plan Plan
	if err := c.get(ctx, "/plan/"+id, &plan); err != nil {
		return nil, err
	}
	c.cache.set(key, &plan)
	return &plan, nil
}

func (c *Client) CreatePlan(ctx context.Context, payload CreatePlanPayload) (*Plan, error) {
	if !validPrice(payload.Price) {
		return nil, ErrInvalidPrice
	}
	var plan Plan
	if err := c.post(ctx, "/plan", payload, &plan); err != nil {
		return nil, err
	}
	c.cache.invalidateList(planEntity)
	return &plan, nil
}

func (c *Client) UpdatePlan(ctx context.Context, id string, payload UpdatePlanPayload) (*Plan, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if payload.Price != nil && !validPrice(*payload.Price) {
		return nil, ErrInvalidPrice
	}
	var plan Plan
	if err := c.patch(ctx, "/plan/"+id, payload, &plan); err != nil {
		return nil, err
	}
	c.cache.invalidateList(planEntity)
	c.cache.invalidateItem(planEntity, id)
	return &plan, nil
}

func (c *Client) DeletePlan(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	if err := c.delete(ctx, "/plan/"+id); err != nil {
		return err
	}
	c.cache.invalidateList(planEntity)
	c.cache.invalidateItem(planEntity, id)
	return nil
}
