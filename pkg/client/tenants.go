package client

import (
	"context"
	"net/url"
)

const tenantEntity = "tenant"

func (c *Client) Tenants(ctx context.Context) ([]Tenant, error) {
	key := listKey(tenantEntity, "")
	if v, ok := c.cache.get(key); ok {
		return v.([]Tenant), nil
	}
	var tenants []Tenant
	if err := c.get(ctx, "/tenant", &tenants); err != nil {
		return nil, err
	}
	c.cache.set(key, tenants)
	return tenants, nil
}

func (c *Client) Tenant(ctx context.Context, id string) (*Tenant, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	key := itemKey(tenantEntity, id)
	if v, ok := c.cache.get(key); ok {
		return v.(*Tenant), nil
	}
	var tenant Tenant
	if err := c.get(ctx, "/tenant/"+id, &tenant); err != nil {
		return nil, err
	}
	c.cache.set(key, &tenant)
	return &tenant, nil
}

func (c *Client) CreateTenant(ctx context.Context, payload CreateTenantPayload) (*Tenant, error) {
	if !validEmail(payload.OwnerEmail) {
		return nil, ErrInvalidEmail
	}
	var tenant Tenant
	if err := c.post(ctx, "/tenant", payload, &tenant); err != nil {
		return nil, err
	}
	c.cache.invalidateList(tenantEntity)
	return &tenant, nil
}

func (c *Client) UpdateTenant(ctx context.Context, id string, payload UpdateTenantPayload) (*Tenant, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var tenant Tenant
	if err := c.patch(ctx, "/tenant/"+id, payload, &tenant); err != nil {
		return nil, err
	}
	c.cache.invalidateList(tenantEntity)
	c.cache.invalidateItem(tenantEntity, id)
	return &tenant, nil
}

func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	if err := c.delete(ctx, "/tenant/"+id); err != nil {
		return err
	}
	c.cache.invalidateList(tenantEntity)
	c.cache.invalidateItem(tenantEntity, id)
	return nil
}

// OwnerByEmail resolves which tenant a manager operates. Never cached:
// it runs once at sign-in and must see a freshly created tenant.
func (c *Client) OwnerByEmail(ctx context.Context, email string) (*Owner, error) {
	if email == "" {
		return nil, ErrMissingID
	}
	var owner Owner
	if err := c.get(ctx, "/owner/by-email/"+url.PathEscape(email), &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}
