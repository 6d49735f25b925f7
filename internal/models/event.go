package models

import "time"

// Event represents a calendar event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`           // calendar day the event starts on
	Time        string    `json:"time"`           // 24-hour HH:MM, split out of the start instant
	Priority    bool      `json:"priority"`
	Tags        []string  `json:"tags"`           // tag names linked via the event-tags join

	// The server has no completed concept for events. The field exists
	// for symmetry with Todo and is never persisted.
	Completed bool `json:"completed"`
}

// Tag is a user-scoped label attached to events.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex string like #FF0000
}
