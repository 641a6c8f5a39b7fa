package client

import (
	"context"
	"net/http"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// Login exchanges credentials for a bearer token. The call is always
// anonymous; any default token on the client is not sent.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.DoJSON(ctx, "/auth/login", Options{
		Method:    http.MethodPost,
		Anonymous: true,
		Body:      creds,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the same shape as Login.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error) {
	var out domain.AuthResult
	err := c.DoJSON(ctx, "/auth/register", Options{
		Method:    http.MethodPost,
		Anonymous: true,
		Body:      reg,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches /auth/me with an explicit token. The profile shape
// is server-defined and stored as-is, so it stays a generic map.
func (c *Client) Profile(ctx context.Context, token string) (map[string]any, error) {
	var out map[string]any
	err := c.DoJSON(ctx, "/auth/me", Options{Token: token}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile updates the authenticated user's own account.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (map[string]any, error) {
	var out map[string]any
	err := c.DoJSON(ctx, "/users/me", Options{
		Method: http.MethodPut,
		Body:   update,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
