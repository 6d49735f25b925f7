package api

import (
	"context"
	"net/http"
)

// Login authenticates with email and password. The server responds
// with the user and sets the session cookies.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "password": password}
	return requestJSON[User](ctx, c, http.MethodPost, "/api/login", body)
}

// Refresh renews the session from the refresh cookie. Reports whether
// the renewal succeeded; it never triggers further recovery itself.
func (c *Client) Refresh(ctx context.Context) bool {
	return c.refresh(ctx)
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.request(ctx, http.MethodPost, "/api/logout", nil)
	return err
}

// Revoke invalidates the refresh token.
func (c *Client) Revoke(ctx context.Context) error {
	_, err := c.request(ctx, http.MethodPost, "/api/revoke", nil)
	return err
}
