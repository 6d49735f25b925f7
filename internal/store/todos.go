package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/models"
	"github.com/curtisbraxdale/taday-front/internal/notify"
	"github.com/curtisbraxdale/taday-front/internal/transform"
)

// Todos is the in-memory todos collection.
type Todos struct {
	mu      sync.Mutex
	todos   []models.Todo
	loading bool
	err     string

	client   *api.Client
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewTodos creates an empty todos store.
func NewTodos(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Todos {
	return &Todos{client: client, notifier: notifier, logger: logger}
}

// Items returns a copy of the current collection.
func (s *Todos) Items() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Err returns the persisted load error, empty when the last load worked.
func (s *Todos) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether a load is in flight.
func (s *Todos) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Load replaces the collection with the server's view. On failure the
// previous collection is kept and err is set.
func (s *Todos) Load(ctx context.Context, sort string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	wireTodos, err := s.client.GetTodos(ctx, sort)
	if err != nil {
		s.mu.Lock()
		if api.IsNetwork(err) {
			s.err = "Network error while loading todos"
		} else {
			s.err = "Failed to load todos: " + err.Error()
		}
		s.mu.Unlock()
		s.notifyFailure(err, "Failed to load todos")
		return err
	}

	todos := make([]models.Todo, 0, len(wireTodos))
	for _, wireTodo := range wireTodos {
		todos = append(todos, transform.TodoFromWire(wireTodo))
	}

	s.mu.Lock()
	s.todos = todos
	s.mu.Unlock()
	return nil
}

// Create posts a new todo and prepends the server's version of it.
func (s *Todos) Create(ctx context.Context, todo models.Todo) bool {
	created, err := s.client.CreateTodo(ctx, transform.TodoToWire(todo))
	if err != nil {
		s.notifyFailure(err, "Failed to create todo")
		return false
	}

	newTodo := transform.TodoFromWire(created)

	s.mu.Lock()
	s.todos = append([]models.Todo{newTodo}, s.todos...)
	s.mu.Unlock()

	s.notifier.Notify("Todo created successfully!", notify.Success)
	return true
}

// Update puts the todo by id and replaces the matching element in place.
func (s *Todos) Update(ctx context.Context, todo models.Todo) bool {
	updated, err := s.client.UpdateTodo(ctx, todo.ID, transform.TodoUpdateToWire(todo))
	if err != nil {
		s.notifyFailure(err, "Failed to update todo")
		return false
	}

	newTodo := transform.TodoFromWire(updated)

	s.mu.Lock()
	for i := range s.todos {
		if s.todos[i].ID == todo.ID {
			s.todos[i] = newTodo
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Notify("Todo updated successfully!", notify.Success)
	return true
}

// Delete removes the todo server-side and drops it from the collection.
func (s *Todos) Delete(ctx context.Context, id string) bool {
	return s.remove(ctx, id, false)
}

// Complete finishes a todo. The server has no completed state, so
// completion is the same deletion with a different message.
func (s *Todos) Complete(ctx context.Context, id string) bool {
	return s.remove(ctx, id, true)
}

func (s *Todos) remove(ctx context.Context, id string, isCompletion bool) bool {
	if err := s.client.DeleteTodo(ctx, id); err != nil {
		s.notifyFailure(err, "Failed to delete todo")
		return false
	}

	var deleted *models.Todo
	s.mu.Lock()
	kept := s.todos[:0]
	for i := range s.todos {
		if s.todos[i].ID == id {
			t := s.todos[i]
			deleted = &t
			continue
		}
		kept = append(kept, s.todos[i])
	}
	s.todos = kept
	s.mu.Unlock()

	if deleted != nil {
		if isCompletion {
			s.notifier.Notify("\""+deleted.Title+"\" completed and removed!", notify.Success)
		} else {
			s.notifier.Notify("\""+deleted.Title+"\" deleted successfully", notify.Success)
		}
	}
	return true
}

func (s *Todos) notifyFailure(err error, message string) {
	if api.IsNetwork(err) {
		s.notifier.Notify("Network error. Please check your connection.", notify.Error)
		return
	}
	s.notifier.Notify(message, notify.Error)
}
