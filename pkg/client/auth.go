package client

import "context"

type AuthUser struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image *string `json:"image,omitempty"`
	Role  string  `json:"role"`
}

type AuthResult struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         AuthUser `json:"user"`
}

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and adopts the returned access token for
// subsequent requests.
func (c *Client) Register(ctx context.Context, payload RegisterPayload) (*AuthResult, error) {
	var res AuthResult
	if err := c.post(ctx, "/auth/register", payload, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.AccessToken)
	return &res, nil
}

func (c *Client) Login(ctx context.Context, payload LoginPayload) (*AuthResult, error) {
	var res AuthResult
	if err := c.post(ctx, "/auth/login", payload, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.AccessToken)
	return &res, nil
}

// Refresh rotates the token pair using a stored refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	var res AuthResult
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.post(ctx, "/auth/refresh", body, &res); err != nil {
		return nil, err
	}
	c.SetToken(res.AccessToken)
	return &res, nil
}

// Logout revokes the refresh token, clears the bearer token and drops
// every cached query.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.post(ctx, "/auth/logout", body, nil); err != nil {
		return err
	}
	c.SetToken("")
	c.InvalidateAll()
	return nil
}
