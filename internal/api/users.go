package api

import (
	"context"
	"net/http"
)

// GetUser fetches the currently authenticated account.
func (c *Client) GetUser(ctx context.Context) (User, error) {
	return requestJSON[User](ctx, c, http.MethodGet, "/api/user", nil)
}

// CreateUser registers a new account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	return requestJSON[User](ctx, c, http.MethodPost, "/api/users", req)
}

// UpdateUser partially updates the current account. fields holds only
// the keys the caller wants changed; absent fields are never sent,
// not even as null, which is why this takes a map rather than a
// struct with omitempty (an explicitly empty value must still go out).
func (c *Client) UpdateUser(ctx context.Context, fields map[string]string) (User, error) {
	return requestJSON[User](ctx, c, http.MethodPut, "/api/user", fields)
}

// DeleteUser deletes the current account and everything under it.
func (c *Client) DeleteUser(ctx context.Context) error {
	_, err := c.request(ctx, http.MethodDelete, "/api/user", nil)
	return err
}
