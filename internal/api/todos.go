package api

import (
	"context"
	"net/http"
)

// GetTodos lists the user's todos. sort may be "desc" or empty.
func (c *Client) GetTodos(ctx context.Context, sort string) ([]Todo, error) {
	endpoint := "/api/todos"
	if sort != "" {
		endpoint += "?sort=" + sort
	}
	return requestJSON[[]Todo](ctx, c, http.MethodGet, endpoint, nil)
}

// GetTodo fetches a single todo by id.
func (c *Client) GetTodo(ctx context.Context, id string) (Todo, error) {
	return requestJSON[Todo](ctx, c, http.MethodGet, "/api/todos/"+id, nil)
}

// CreateTodo creates a todo.
func (c *Client) CreateTodo(ctx context.Context, req CreateTodoRequest) (Todo, error) {
	return requestJSON[Todo](ctx, c, http.MethodPost, "/api/todos", req)
}

// UpdateTodo partially updates a todo; fields holds only the keys to
// change (date, title, description).
func (c *Client) UpdateTodo(ctx context.Context, id string, fields map[string]string) (Todo, error) {
	return requestJSON[Todo](ctx, c, http.MethodPut, "/api/todos/"+id, fields)
}

// DeleteTodo removes a todo. Completing a todo is this same call.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, "/api/todos/"+id, nil)
	return err
}
