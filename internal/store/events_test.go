package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/models"
	"github.com/curtisbraxdale/taday-front/internal/notify"
)

// tagServer fakes the events/tags endpoints with just enough state to
// observe the tag-sync protocol.
type tagServer struct {
	mu sync.Mutex

	tags  []api.Tag           // all of the user's tags
	links map[string][]string // event id -> linked tag ids

	createdTags int
	linkCalls   int
	unlinkCalls int
}

func newTagServer(tags ...api.Tag) *tagServer {
	return &tagServer{tags: tags, links: make(map[string][]string)}
}

func (s *tagServer) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/tags", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		json.NewEncoder(w).Encode(s.tags)
	})
	mux.HandleFunc("POST /api/tags", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateTagRequest
		json.NewDecoder(r.Body).Decode(&req)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.createdTags++
		tag := api.Tag{ID: "tag-" + req.Name, Name: req.Name, Color: req.Color}
		s.tags = append(s.tags, tag)
		json.NewEncoder(w).Encode(tag)
	})
	mux.HandleFunc("GET /api/events/{id}/tags", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		linked := []api.Tag{}
		for _, tagID := range s.links[r.PathValue("id")] {
			for _, tag := range s.tags {
				if tag.ID == tagID {
					linked = append(linked, tag)
				}
			}
		}
		json.NewEncoder(w).Encode(linked)
	})
	mux.HandleFunc("POST /api/events/{id}/tags", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.linkCalls++
		eventID := r.PathValue("id")
		s.links[eventID] = append(s.links[eventID], body["tag_id"])
		json.NewEncoder(w).Encode(api.EventTag{ID: "link", EventID: eventID, TagID: body["tag_id"]})
	})
	mux.HandleFunc("DELETE /api/events/{id}/tags/{tagID}", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.unlinkCalls++
		eventID, tagID := r.PathValue("id"), r.PathValue("tagID")
		kept := []string{}
		for _, linked := range s.links[eventID] {
			if linked != tagID {
				kept = append(kept, linked)
			}
		}
		s.links[eventID] = kept
		w.WriteHeader(http.StatusNoContent)
	})
}

func newTestEvents(t *testing.T, mux *http.ServeMux) (*Events, *notify.Recorder) {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := api.New(server.URL, testLogger())
	require.NoError(t, err)

	recorder := &notify.Recorder{}
	return NewEvents(client, recorder, testLogger()), recorder
}

func eventList() []api.Event {
	return []api.Event{
		{ID: "e2", Title: "Dentist", StartDate: "2026-09-02T14:30:00Z", EndDate: "2026-09-02T15:30:00Z"},
		{ID: "e1", Title: "Standup", StartDate: "2026-09-01T09:00:00Z", EndDate: "2026-09-01T10:00:00Z", Priority: true},
	}
}

func TestEvents_LoadDerivesTagNames(t *testing.T) {
	tagSrv := newTagServer(api.Tag{ID: "tag-1", Name: "work", Color: "#FF0000"})
	tagSrv.links["e1"] = []string{"tag-1"}

	mux := http.NewServeMux()
	tagSrv.register(mux)
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(eventList())
	})
	events, _ := newTestEvents(t, mux)

	require.NoError(t, events.Load(context.Background(), api.EventListParams{Sort: "desc"}))

	items := events.Items()
	require.Len(t, items, 2)
	assert.Equal(t, []string{}, items[0].Tags)
	assert.Equal(t, []string{"work"}, items[1].Tags)
	assert.Equal(t, "14:30", items[0].Time)
}

func TestEvents_LoadToleratesTagLookupFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(eventList())
	})
	mux.HandleFunc("GET /api/events/{id}/tags", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	events, _ := newTestEvents(t, mux)

	require.NoError(t, events.Load(context.Background(), api.EventListParams{}))

	items := events.Items()
	require.Len(t, items, 2)
	assert.Equal(t, []string{}, items[0].Tags, "tag failure degrades to no tags, never fails the load")
	assert.Empty(t, events.Err())
}

func TestEvents_LoadIsIdempotent(t *testing.T) {
	tagSrv := newTagServer()
	mux := http.NewServeMux()
	tagSrv.register(mux)
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(eventList())
	})
	events, _ := newTestEvents(t, mux)

	require.NoError(t, events.Load(context.Background(), api.EventListParams{Sort: "desc"}))
	first := events.Items()
	require.NoError(t, events.Load(context.Background(), api.EventListParams{Sort: "desc"}))

	assert.Equal(t, first, events.Items())
}

func TestEvents_CreatePrependsAndReusesExistingTag(t *testing.T) {
	tagSrv := newTagServer(api.Tag{ID: "tag-1", Name: "work", Color: "#FF0000"})

	mux := http.NewServeMux()
	tagSrv.register(mux)
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(eventList())
	})
	mux.HandleFunc("POST /api/events", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.RecurD)
		json.NewEncoder(w).Encode(api.Event{
			ID:        "server-7",
			Title:     req.Title,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Priority:  req.Priority,
		})
	})
	events, _ := newTestEvents(t, mux)
	require.NoError(t, events.Load(context.Background(), api.EventListParams{Sort: "desc"}))

	// The same name twice must not create a duplicate tag or link.
	ok := events.Create(context.Background(), models.Event{
		Title: "Planning",
		Time:  "11:00",
		Tags:  []string{"work", "work"},
	}, nil)

	require.True(t, ok)
	items := events.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "server-7", items[0].ID)
	assert.Equal(t, []string{"work", "work"}, items[0].Tags, "desired names echoed back as given")

	assert.Zero(t, tagSrv.createdTags, "existing tag is reused")
	assert.Equal(t, 1, tagSrv.linkCalls, "exactly one link for one distinct tag")
	assert.Equal(t, []string{"tag-1"}, tagSrv.links["server-7"])
}

func TestEvents_CreateMissingTagGetsPaletteColor(t *testing.T) {
	tagSrv := newTagServer()

	mux := http.NewServeMux()
	tagSrv.register(mux)
	mux.HandleFunc("POST /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Event{ID: "e9", Title: "Gym", StartDate: "2026-09-01T18:00:00Z"})
	})
	events, _ := newTestEvents(t, mux)

	require.True(t, events.Create(context.Background(), models.Event{Title: "Gym", Time: "18:00", Tags: []string{"health"}}, nil))

	require.Equal(t, 1, tagSrv.createdTags)
	assert.Contains(t, tagPalette, tagSrv.tags[0].Color)
	assert.Equal(t, []string{"tag-health"}, tagSrv.links["e9"])
}

// Tag-sync failure must not fail the create, surface an error or
// produce an error notification.
func TestEvents_CreateSurvivesTagSyncFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Event{ID: "e9", Title: "Gym", StartDate: "2026-09-01T18:00:00Z"})
	})
	mux.HandleFunc("GET /api/tags", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	events, recorder := newTestEvents(t, mux)

	ok := events.Create(context.Background(), models.Event{Title: "Gym", Time: "18:00", Tags: []string{"health"}}, nil)

	require.True(t, ok)
	require.Len(t, events.Items(), 1)
	assert.Equal(t, []notify.Kind{notify.Success}, recorder.Kinds)
}

func TestEvents_UpdateRelinksTags(t *testing.T) {
	tagSrv := newTagServer(
		api.Tag{ID: "tag-1", Name: "work", Color: "#FF0000"},
		api.Tag{ID: "tag-2", Name: "health", Color: "#00FF00"},
	)
	tagSrv.links["e1"] = []string{"tag-1"}

	mux := http.NewServeMux()
	tagSrv.register(mux)
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(eventList())
	})
	mux.HandleFunc("PUT /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		json.NewEncoder(w).Encode(api.Event{
			ID:        r.PathValue("id"),
			Title:     fields["title"].(string),
			StartDate: fields["start_date"].(string),
		})
	})
	events, _ := newTestEvents(t, mux)
	require.NoError(t, events.Load(context.Background(), api.EventListParams{Sort: "desc"}))

	ok := events.Update(context.Background(), models.Event{
		ID:    "e1",
		Title: "Standup (moved)",
		Time:  "10:00",
		Tags:  []string{"health"},
	}, nil)

	require.True(t, ok)
	assert.Equal(t, 1, tagSrv.unlinkCalls, "old link removed first")
	assert.Equal(t, []string{"tag-2"}, tagSrv.links["e1"], "only the new tag remains linked")

	items := events.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "e2", items[0].ID, "position preserved")
	assert.Equal(t, "Standup (moved)", items[1].Title)
}

func TestEvents_DeleteRemovesAndNotifies(t *testing.T) {
	tagSrv := newTagServer()
	mux := http.NewServeMux()
	tagSrv.register(mux)
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(eventList())
	})
	mux.HandleFunc("DELETE /api/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	events, recorder := newTestEvents(t, mux)
	require.NoError(t, events.Load(context.Background(), api.EventListParams{Sort: "desc"}))

	require.True(t, events.Delete(context.Background(), "e2"))

	items := events.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "e1", items[0].ID)
	assert.Equal(t, "\"Dentist\" deleted successfully", recorder.Messages[len(recorder.Messages)-1])
}

func TestEvents_LoadFailureKeepsPreviousCollection(t *testing.T) {
	failing := false
	tagSrv := newTagServer()
	mux := http.NewServeMux()
	tagSrv.register(mux)
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(eventList())
	})
	events, _ := newTestEvents(t, mux)

	require.NoError(t, events.Load(context.Background(), api.EventListParams{}))
	before := events.Items()

	failing = true
	require.Error(t, events.Load(context.Background(), api.EventListParams{}))

	assert.Equal(t, before, events.Items())
	assert.Contains(t, events.Err(), "Failed to load events")
}
