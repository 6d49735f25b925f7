// Package session holds the authenticated user and drives every
// auth-affecting operation: startup restore, login, registration,
// profile update, account deletion and logout.
//
// The state machine has three states: loading (startup only),
// authenticated and unauthenticated. A durable logged-in marker and a
// cached profile are written through on every successful
// auth-affecting operation and cleared together on every definitive
// auth failure. Both are advisory; the next successful fetch always
// overwrites them.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/localstore"
	"github.com/curtisbraxdale/taday-front/internal/models"
	"github.com/curtisbraxdale/taday-front/internal/notify"
	"github.com/curtisbraxdale/taday-front/internal/transform"
)

// Status is the authentication state.
type Status int

const (
	StatusLoading Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

// Session is the auth state machine and current-user holder.
type Session struct {
	mu     sync.Mutex
	status Status
	user   *models.User

	client   *api.Client
	cache    localstore.Store
	notifier notify.Notifier
	logger   *slog.Logger

	// onSessionEnd replaces the web client's full page reload after
	// logout or account deletion: the host resets its view state here.
	onSessionEnd func()
}

// New creates a session in the loading state. Call Restore to settle it.
func New(client *api.Client, cache localstore.Store, notifier notify.Notifier, logger *slog.Logger) *Session {
	return &Session{
		status:   StatusLoading,
		client:   client,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// OnSessionEnd registers the hook invoked after logout or account
// deletion has cleared the session.
func (s *Session) OnSessionEnd(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSessionEnd = fn
}

// Status returns the current authentication state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// IsAuthenticated reports whether the last user fetch succeeded.
func (s *Session) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// User returns a copy of the current user, or nil when signed out.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Restore settles the startup state. Without the logged-in hint it
// goes straight to unauthenticated with zero network calls. With the
// hint it fetches the current user, falling back to one silent
// refresh plus one more fetch; if that also fails both local keys are
// cleared and the session is unauthenticated.
func (s *Session) Restore(ctx context.Context) {
	_, hinted, err := s.cache.Get(localstore.KeyLoggedIn)
	if err != nil {
		s.logger.Warn("reading logged-in hint", "error", err)
	}
	if !hinted {
		s.setUnauthenticated()
		return
	}

	wireUser, err := s.client.GetUser(ctx)
	if err != nil {
		if !s.client.Refresh(ctx) {
			s.clearLocal()
			s.setUnauthenticated()
			return
		}
		wireUser, err = s.client.GetUser(ctx)
		if err != nil {
			s.clearLocal()
			s.setUnauthenticated()
			return
		}
	}

	user := transform.UserFromWire(wireUser)
	s.persistUser(user)
	s.setAuthenticated(user)
}

// Login authenticates with email and password. Returns false without
// changing state on failure.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	wireUser, err := s.client.Login(ctx, email, password)
	if err != nil {
		switch api.ErrorKind(err) {
		case api.KindAuth:
			s.notifier.Notify("Invalid email or password", notify.Error)
		case api.KindNetwork:
			s.notifier.Notify("Network error. Please check your connection.", notify.Error)
		default:
			s.notifier.Notify("Login failed. Please try again.", notify.Error)
		}
		return false
	}

	user := transform.UserFromWire(wireUser)
	s.persistUser(user)
	s.persistLoggedIn()
	s.setAuthenticated(user)
	return true
}

// Register creates a new account and signs it in.
func (s *Session) Register(ctx context.Context, data transform.NewUser) bool {
	wireUser, err := s.client.CreateUser(ctx, transform.NewUserToWire(data))
	if err != nil {
		switch api.ErrorKind(err) {
		case api.KindConflict:
			s.notifier.Notify("Email already exists. Please use a different email.", notify.Error)
		case api.KindNetwork:
			s.notifier.Notify("Network error. Please check your connection.", notify.Error)
		default:
			s.notifier.Notify("Registration failed. Please try again.", notify.Error)
		}
		return false
	}

	user := transform.UserFromWire(wireUser)
	s.persistUser(user)
	s.persistLoggedIn()
	s.setAuthenticated(user)
	return true
}

// UpdateUser sends a partial profile update. Only fields set on the
// update go out; authentication state is unchanged either way.
func (s *Session) UpdateUser(ctx context.Context, update transform.UserUpdate) bool {
	wireUser, err := s.client.UpdateUser(ctx, transform.UserUpdateToWire(update))
	if err != nil {
		switch api.ErrorKind(err) {
		case api.KindConflict:
			s.notifier.Notify("Email already exists. Please use a different email.", notify.Error)
		case api.KindNetwork:
			s.notifier.Notify("Network error. Please check your connection.", notify.Error)
		default:
			s.notifier.Notify("Failed to update profile. Please try again.", notify.Error)
		}
		return false
	}

	user := transform.UserFromWire(wireUser)
	s.persistUser(user)

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return true
}

// DeleteAccount deletes the account server-side, then clears the
// session and fires the session-end hook.
func (s *Session) DeleteAccount(ctx context.Context) bool {
	if err := s.client.DeleteUser(ctx); err != nil {
		if api.IsNetwork(err) {
			s.notifier.Notify("Network error. Please check your connection.", notify.Error)
		} else {
			s.notifier.Notify("Failed to delete account. Please try again.", notify.Error)
		}
		return false
	}

	s.clearLocal()
	s.setUnauthenticated()
	s.notifier.Notify("Account deleted successfully", notify.Success)
	s.fireSessionEnd()
	return true
}

// Logout ends the session. The server call is best-effort: its
// failure is logged and never blocks clearing local state.
func (s *Session) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.Warn("logout call failed", "error", err)
	}

	s.clearLocal()
	s.setUnauthenticated()
	s.notifier.Notify("Successfully logged out!", notify.Success)
	s.fireSessionEnd()
}

func (s *Session) setAuthenticated(user models.User) {
	s.mu.Lock()
	s.status = StatusAuthenticated
	s.user = &user
	s.mu.Unlock()
}

func (s *Session) setUnauthenticated() {
	s.mu.Lock()
	s.status = StatusUnauthenticated
	s.user = nil
	s.mu.Unlock()
}

func (s *Session) fireSessionEnd() {
	s.mu.Lock()
	fn := s.onSessionEnd
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *Session) persistLoggedIn() {
	if err := s.cache.Set(localstore.KeyLoggedIn, "true"); err != nil {
		s.logger.Warn("persisting logged-in marker", "error", err)
	}
}

func (s *Session) persistUser(user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn("encoding cached profile", "error", err)
		return
	}
	if err := s.cache.Set(localstore.KeyUser, string(raw)); err != nil {
		s.logger.Warn("persisting cached profile", "error", err)
	}
}

func (s *Session) clearLocal() {
	if err := s.cache.Delete(localstore.KeyUser); err != nil {
		s.logger.Warn("clearing cached profile", "error", err)
	}
	if err := s.cache.Delete(localstore.KeyLoggedIn); err != nil {
		s.logger.Warn("clearing logged-in marker", "error", err)
	}
}
