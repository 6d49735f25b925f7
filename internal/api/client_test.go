package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL, testLogger())
	require.NoError(t, err)
	return client, server
}

func TestClient_GetUser(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(User{ID: "1", Username: "Ann", Email: "a@b.com"})
	})
	client, _ := newTestClient(t, handler)

	user, err := client.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Username)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestClient_NoContent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client, _ := newTestClient(t, handler)

	err := client.DeleteTodo(context.Background(), "42")
	require.NoError(t, err)
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantKind   Kind
	}{
		{"conflict", http.StatusConflict, KindConflict},
		{"server error", http.StatusInternalServerError, KindAPI},
		{"bad request", http.StatusBadRequest, KindAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"error":"nope"}`))
			})
			client, _ := newTestClient(t, handler)

			_, err := client.GetUser(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, ErrorKind(err))

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.Status)
			assert.Equal(t, `{"error":"nope"}`, apiErr.Body)
		})
	}
}

// A 401 with a working refresh must be invisible to the caller: the
// retried response comes back as if nothing happened.
func TestClient_401Recovery(t *testing.T) {
	var userCalls, refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user", func(w http.ResponseWriter, r *http.Request) {
		userCalls++
		if userCalls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(User{ID: "1", Username: "Ann"})
	})
	mux.HandleFunc("/api/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		w.WriteHeader(http.StatusOK)
	})
	client, _ := newTestClient(t, mux)

	user, err := client.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Username)
	assert.Equal(t, 2, userCalls, "original call plus exactly one retry")
	assert.Equal(t, 1, refreshCalls)
}

func TestClient_401Terminal(t *testing.T) {
	tests := []struct {
		name          string
		refreshStatus int
		retryStatus   int
	}{
		{"refresh fails", http.StatusUnauthorized, http.StatusOK},
		{"retry fails after refresh", http.StatusOK, http.StatusUnauthorized},
		{"retry fails with server error", http.StatusOK, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userCalls := 0
			mux := http.NewServeMux()
			mux.HandleFunc("/api/user", func(w http.ResponseWriter, r *http.Request) {
				userCalls++
				if userCalls == 1 {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				w.WriteHeader(tt.retryStatus)
			})
			mux.HandleFunc("/api/refresh", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.refreshStatus)
			})
			client, _ := newTestClient(t, mux)

			_, err := client.GetUser(context.Background())
			require.Error(t, err)
			assert.Equal(t, KindAuth, ErrorKind(err))

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := New(server.URL, testLogger())
	require.NoError(t, err)
	server.Close() // nothing listening anymore

	_, err = client.GetUser(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindNetwork, ErrorKind(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
}

func TestClient_UpdateUserSendsOnlyProvidedFields(t *testing.T) {
	var received map[string]json.RawMessage
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(User{ID: "1", Username: "X"})
	})
	client, _ := newTestClient(t, handler)

	_, err := client.UpdateUser(context.Background(), map[string]string{"username": "X"})
	require.NoError(t, err)

	assert.Len(t, received, 1)
	assert.Contains(t, received, "username")
}

func TestClient_EventListParams(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]Event{})
	})
	client, _ := newTestClient(t, handler)

	_, err := client.GetEvents(context.Background(), EventListParams{Tag: "work", Range: "week", Sort: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "range=week&sort=desc&tag=work", gotQuery)
}
