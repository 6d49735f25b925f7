package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies API failures so callers can branch without poking at
// status codes everywhere.
type Kind string

const (
	// KindAuth means the request ended in a 401 even after the single
	// refresh-and-retry attempt.
	KindAuth Kind = "auth"
	// KindConflict is a 409, surfaced separately because register and
	// profile update branch on it ("email already exists").
	KindConflict Kind = "conflict"
	// KindAPI covers every other non-2xx response.
	KindAPI Kind = "api"
	// KindNetwork means the request never got a response. Status is 0.
	KindNetwork Kind = "network"
)

// Error is the only error type the client surfaces to callers.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Body    string // raw response body, if any
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("taday api: %s (%d)", e.Message, e.Status)
	}
	return fmt.Sprintf("taday api: %s", e.Message)
}

func newStatusError(status int, body string) *Error {
	kind := KindAPI
	switch status {
	case http.StatusUnauthorized:
		kind = KindAuth
	case http.StatusConflict:
		kind = KindConflict
	}
	return &Error{
		Kind:    kind,
		Status:  status,
		Message: fmt.Sprintf("unexpected status %d", status),
		Body:    body,
	}
}

func newNetworkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Status:  0,
		Message: fmt.Sprintf("network error: %v", err),
	}
}

// ErrorKind extracts the Kind from an error, or "" if err is not an
// *Error. Useful for exhaustive switches at the store boundary.
func ErrorKind(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsAuth reports whether err is a terminal authentication failure.
func IsAuth(err error) bool { return ErrorKind(err) == KindAuth }

// IsConflict reports whether err is a 409 conflict.
func IsConflict(err error) bool { return ErrorKind(err) == KindConflict }

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool { return ErrorKind(err) == KindNetwork }
