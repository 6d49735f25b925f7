package api

// Wire-format types as the Taday backend serves them. Field names are
// snake_case and dates are RFC 3339 strings; the transform package
// maps these onto the client models.

// User is the wire shape of an account.
type User struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// Todo is the wire shape of a todo. The server always has a date: the
// client substitutes an epoch sentinel when the user sets none.
type Todo struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Event is the wire shape of a calendar event.
type Event struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    bool   `json:"priority"`
	RecurD      bool   `json:"recur_d"`
	RecurW      bool   `json:"recur_w"`
	RecurM      bool   `json:"recur_m"`
	RecurY      bool   `json:"recur_y"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Tag is the wire shape of a tag.
type Tag struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EventTag is a row in the event/tag join.
type EventTag struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	TagID     string `json:"tag_id"`
	CreatedAt string `json:"created_at"`
}

// CreateUserRequest is the body for POST /api/users.
type CreateUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// CreateTodoRequest is the body for POST /api/todos.
type CreateTodoRequest struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CreateEventRequest is the body for POST /api/events. The recur
// flags are always sent false; see transform.EventToWire.
type CreateEventRequest struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    bool   `json:"priority"`
	RecurD      bool   `json:"recur_d"`
	RecurW      bool   `json:"recur_w"`
	RecurM      bool   `json:"recur_m"`
	RecurY      bool   `json:"recur_y"`
}

// CreateTagRequest is the body for POST /api/tags.
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// EventListParams are the server-side filters for GET /api/events.
type EventListParams struct {
	Tag   string // filter by tag name
	Range string // day, week, month or year
	Sort  string // desc for most-recent-first
}
