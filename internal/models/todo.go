package models

import "time"

// Todo represents a todo item
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	// Completing a todo is implemented server-side as deletion, so a
	// todo read from the server is always incomplete. Priority and
	// Tags are likewise inert: the server has neither concept for
	// todos. All three are kept for symmetry with Event.
	Completed bool     `json:"completed"`
	Priority  bool     `json:"priority"`
	Tags      []string `json:"tags"`
}
