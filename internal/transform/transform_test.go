package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/models"
)

func TestUserFromWire(t *testing.T) {
	user := UserFromWire(api.User{
		ID:          "u1",
		Username:    "Ann",
		Email:       "a@b.com",
		PhoneNumber: "555-0100",
	})
	assert.Equal(t, models.User{ID: "u1", Name: "Ann", Email: "a@b.com", Phone: "555-0100"}, user)
}

func TestUserUpdateToWire_OmitsUnsetFields(t *testing.T) {
	name := "X"
	fields := UserUpdateToWire(UserUpdate{Name: &name})

	assert.Equal(t, map[string]string{"username": "X"}, fields)
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "phone_number")
}

func TestUserUpdateToWire_KeepsExplicitEmpty(t *testing.T) {
	phone := ""
	fields := UserUpdateToWire(UserUpdate{Phone: &phone})
	assert.Equal(t, map[string]string{"phone_number": ""}, fields)
}

func TestEventToWire_DefaultsEndToOneHourAfterStart(t *testing.T) {
	event := models.Event{
		Title: "Standup",
		Date:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:  "09:30",
	}

	wire := EventToWire(event, nil)
	assert.Equal(t, "2026-03-10T09:30:00Z", wire.StartDate)
	assert.Equal(t, "2026-03-10T10:30:00Z", wire.EndDate)
}

func TestEventToWire_ExplicitEnd(t *testing.T) {
	event := models.Event{
		Title: "Offsite",
		Date:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:  "09:00",
	}
	end := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)

	wire := EventToWire(event, &end)
	assert.Equal(t, "2026-03-10T17:00:00Z", wire.EndDate)
}

func TestEventToWire_RecurrenceAlwaysOff(t *testing.T) {
	wire := EventToWire(models.Event{Date: time.Now(), Time: "09:00"}, nil)
	assert.False(t, wire.RecurD)
	assert.False(t, wire.RecurW)
	assert.False(t, wire.RecurM)
	assert.False(t, wire.RecurY)

	fields := EventUpdateToWire(models.Event{Date: time.Now(), Time: "09:00"}, nil)
	for _, key := range []string{"recur_d", "recur_w", "recur_m", "recur_y"} {
		require.Contains(t, fields, key)
		assert.Equal(t, false, fields[key])
	}
}

func TestEventFromWire_SplitsTime(t *testing.T) {
	event := EventFromWire(api.Event{
		ID:        "e1",
		Title:     "Standup",
		StartDate: "2026-03-10T09:30:00Z",
		EndDate:   "2026-03-10T10:30:00Z",
		Priority:  true,
	})

	assert.Equal(t, "09:30", event.Time)
	assert.Equal(t, 2026, event.Date.Year())
	assert.True(t, event.Priority)
	assert.Empty(t, event.Tags)
	assert.False(t, event.Completed)
}

func TestEventRoundTrip_PreservesStartInstant(t *testing.T) {
	original := models.Event{
		Title: "Review",
		Date:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		Time:  "14:15",
	}

	wire := EventToWire(original, nil)
	back := EventFromWire(api.Event{StartDate: wire.StartDate, EndDate: wire.EndDate, Title: wire.Title})
	assert.Equal(t, "14:15", back.Time)
	assert.Equal(t, original.Date.Day(), back.Date.Day())
}

func TestTodoToWire_EpochSentinelWhenNoDueDate(t *testing.T) {
	wire := TodoToWire(models.Todo{Title: "Buy milk"})
	assert.Equal(t, EpochSentinel, wire.Date)
	assert.Equal(t, "Buy milk", wire.Title)

	fields := TodoUpdateToWire(models.Todo{ID: "t1", Title: "Buy milk"})
	assert.Equal(t, EpochSentinel, fields["date"])
}

func TestTodoToWire_DueDate(t *testing.T) {
	due := time.Date(2026, 5, 20, 23, 59, 59, 0, time.UTC)
	wire := TodoToWire(models.Todo{Title: "Taxes", DueDate: &due})
	assert.Equal(t, "2026-05-20T23:59:59Z", wire.Date)
}

func TestTodoFromWire(t *testing.T) {
	todo := TodoFromWire(api.Todo{
		ID:    "t1",
		Title: "Buy milk",
		Date:  "2026-05-20T23:59:59Z",
	})

	require.NotNil(t, todo.DueDate)
	assert.Equal(t, 20, todo.DueDate.Day())
	assert.False(t, todo.Completed)
	assert.False(t, todo.Priority)
	assert.Empty(t, todo.Tags)
}

func TestTodoFromWire_NoDate(t *testing.T) {
	todo := TodoFromWire(api.Todo{ID: "t1", Title: "Someday"})
	assert.Nil(t, todo.DueDate)
}
