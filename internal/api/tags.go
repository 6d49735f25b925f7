package api

import (
	"context"
	"net/http"
)

// GetTags lists all of the user's tags.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	return requestJSON[[]Tag](ctx, c, http.MethodGet, "/api/tags", nil)
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, req CreateTagRequest) (Tag, error) {
	return requestJSON[Tag](ctx, c, http.MethodPost, "/api/tags", req)
}

// UpdateTag partially updates a tag (name, color).
func (c *Client) UpdateTag(ctx context.Context, id string, fields map[string]string) (Tag, error) {
	return requestJSON[Tag](ctx, c, http.MethodPut, "/api/tags/"+id, fields)
}

// DeleteTag removes a tag.
func (c *Client) DeleteTag(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, "/api/tags/"+id, nil)
	return err
}

// GetEventTags lists the tags currently linked to an event.
func (c *Client) GetEventTags(ctx context.Context, eventID string) ([]Tag, error) {
	return requestJSON[[]Tag](ctx, c, http.MethodGet, "/api/events/"+eventID+"/tags", nil)
}

// AddTagToEvent links a tag to an event.
func (c *Client) AddTagToEvent(ctx context.Context, eventID, tagID string) (EventTag, error) {
	body := map[string]string{"tag_id": tagID}
	return requestJSON[EventTag](ctx, c, http.MethodPost, "/api/events/"+eventID+"/tags", body)
}

// RemoveTagFromEvent unlinks a tag from an event.
func (c *Client) RemoveTagFromEvent(ctx context.Context, eventID, tagID string) error {
	_, err := c.request(ctx, http.MethodDelete, "/api/events/"+eventID+"/tags/"+tagID, nil)
	return err
}
