package api

import (
	"context"
	"net/http"
	"net/url"
)

// GetEvents lists events with optional server-side filters.
func (c *Client) GetEvents(ctx context.Context, params EventListParams) ([]Event, error) {
	query := url.Values{}
	if params.Tag != "" {
		query.Set("tag", params.Tag)
	}
	if params.Range != "" {
		query.Set("range", params.Range)
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}

	endpoint := "/api/events"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return requestJSON[[]Event](ctx, c, http.MethodGet, endpoint, nil)
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (Event, error) {
	return requestJSON[Event](ctx, c, http.MethodGet, "/api/events/"+id, nil)
}

// CreateEvent creates an event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error) {
	return requestJSON[Event](ctx, c, http.MethodPost, "/api/events", req)
}

// UpdateEvent partially updates an event; fields holds only the keys
// to change (values are strings for dates/title/description, bools
// for priority and the recur flags).
func (c *Client) UpdateEvent(ctx context.Context, id string, fields map[string]any) (Event, error) {
	return requestJSON[Event](ctx, c, http.MethodPut, "/api/events/"+id, fields)
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, "/api/events/"+id, nil)
	return err
}
