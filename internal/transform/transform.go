// Package transform maps between the backend's wire shapes and the
// client models. Every function here is pure; all the lossy defaults
// the backend forces on us (epoch sentinel dates, one-hour default
// duration, recur flags) live in this package and nowhere else.
package transform

import (
	"time"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/models"
)

// EpochSentinel is sent as a todo's date when the user set no due
// date. The server requires a date on every todo, so absence is
// encoded as this fixed placeholder rather than an omitted field.
const EpochSentinel = "1970-01-01T00:00:00Z"

// UserFromWire converts a wire user to the client model.
func UserFromWire(u api.User) models.User {
	return models.User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Username,
		Phone: u.PhoneNumber,
	}
}

// NewUser holds the fields collected at registration.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// NewUserToWire builds the registration request body.
func NewUserToWire(u NewUser) api.CreateUserRequest {
	return api.CreateUserRequest{
		Username:    u.Name,
		Email:       u.Email,
		Password:    u.Password,
		PhoneNumber: u.Phone,
	}
}

// UserUpdate holds a partial profile update. Nil fields were not
// provided and must not appear in the request body at all.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
}

// UserUpdateToWire builds the update body, omitting unset fields
// entirely. A pointer to an empty string still goes out.
func UserUpdateToWire(u UserUpdate) map[string]string {
	fields := make(map[string]string)
	if u.Name != nil {
		fields["username"] = *u.Name
	}
	if u.Email != nil {
		fields["email"] = *u.Email
	}
	if u.Password != nil {
		fields["password"] = *u.Password
	}
	if u.Phone != nil {
		fields["phone_number"] = *u.Phone
	}
	return fields
}

// EventFromWire converts a wire event to the client model. The start
// instant is split into a calendar date and an HH:MM display time.
// Tags are filled in separately from the event-tags join; Completed
// has no server-side counterpart and is always false.
func EventFromWire(e api.Event) models.Event {
	start, _ := time.Parse(time.RFC3339, e.StartDate)
	return models.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        start,
		Time:        start.Format("15:04"),
		Priority:    e.Priority,
		Tags:        []string{},
		Completed:   false,
	}
}

// EventToWire builds the creation body for an event. The HH:MM time
// is folded into the start instant; when endDate is nil the end
// defaults to exactly one hour after the start. Recurrence is always
// sent as "none": the backend accepts the recur flags but the client
// has never forwarded a real recurrence choice (known gap upstream).
func EventToWire(e models.Event, endDate *time.Time) api.CreateEventRequest {
	start := combineDateTime(e.Date, e.Time)
	end := start.Add(time.Hour)
	if endDate != nil {
		end = *endDate
	}
	return api.CreateEventRequest{
		StartDate:   start.UTC().Format(time.RFC3339),
		EndDate:     end.UTC().Format(time.RFC3339),
		Title:       e.Title,
		Description: e.Description,
		Priority:    e.Priority,
	}
}

// EventUpdateToWire builds the update body for an event. The backend
// takes partial updates but the client always resends the full shape,
// recur flags false included.
func EventUpdateToWire(e models.Event, endDate *time.Time) map[string]any {
	start := combineDateTime(e.Date, e.Time)
	end := start.Add(time.Hour)
	if endDate != nil {
		end = *endDate
	}
	return map[string]any{
		"start_date":  start.UTC().Format(time.RFC3339),
		"end_date":    end.UTC().Format(time.RFC3339),
		"title":       e.Title,
		"description": e.Description,
		"priority":    e.Priority,
		"recur_d":     false,
		"recur_w":     false,
		"recur_m":     false,
		"recur_y":     false,
	}
}

// combineDateTime folds an HH:MM string into the date's day. A
// missing or malformed time leaves the date untouched.
func combineDateTime(date time.Time, hhmm string) time.Time {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, date.Location())
}

// TodoFromWire converts a wire todo to the client model. Completed,
// Priority and Tags have no server-side representation for todos and
// come back false/empty always.
func TodoFromWire(t api.Todo) models.Todo {
	var due *time.Time
	if t.Date != "" {
		if parsed, err := time.Parse(time.RFC3339, t.Date); err == nil {
			due = &parsed
		}
	}
	return models.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     due,
		Completed:   false,
		Priority:    false,
		Tags:        []string{},
	}
}

// TodoToWire builds the creation body for a todo, substituting the
// epoch sentinel when there is no due date.
func TodoToWire(t models.Todo) api.CreateTodoRequest {
	return api.CreateTodoRequest{
		Date:        todoDate(t),
		Title:       t.Title,
		Description: t.Description,
	}
}

// TodoUpdateToWire builds the update body for a todo. Like events,
// the full shape is resent every time.
func TodoUpdateToWire(t models.Todo) map[string]string {
	return map[string]string{
		"date":        todoDate(t),
		"title":       t.Title,
		"description": t.Description,
	}
}

func todoDate(t models.Todo) string {
	if t.DueDate != nil {
		return t.DueDate.UTC().Format(time.RFC3339)
	}
	return EpochSentinel
}
