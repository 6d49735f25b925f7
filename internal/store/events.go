// Package store holds the in-memory entity collections backed by the
// remote API. A store replaces its collection wholesale on load,
// prepends on create (most-recent-first display convention), patches
// in place on update and removes on delete. Failures notify the user
// and leave the previous collection untouched.
//
// Stores do not serialize in-flight mutations against each other:
// each completion applies its own patch to the current snapshot, so
// the last response to arrive wins. The mutex below guards slice
// integrity only.
package store

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/models"
	"github.com/curtisbraxdale/taday-front/internal/notify"
	"github.com/curtisbraxdale/taday-front/internal/transform"
)

// tagPalette is the fixed set of colors assigned to tags created
// implicitly during tag-sync.
var tagPalette = []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF"}

// Events is the in-memory events collection.
type Events struct {
	mu      sync.Mutex
	events  []models.Event
	loading bool
	err     string

	client   *api.Client
	notifier notify.Notifier
	logger   *slog.Logger
}

// NewEvents creates an empty events store.
func NewEvents(client *api.Client, notifier notify.Notifier, logger *slog.Logger) *Events {
	return &Events{client: client, notifier: notifier, logger: logger}
}

// Items returns a copy of the current collection.
func (s *Events) Items() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Err returns the persisted load error, empty when the last load worked.
func (s *Events) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether a load is in flight.
func (s *Events) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Load replaces the collection with the server's view. Each event's
// tag names are re-derived from the event-tags join; a failed tag
// lookup degrades to an empty set and never fails the load. On
// failure the previous collection is kept and err is set.
func (s *Events) Load(ctx context.Context, params api.EventListParams) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	wireEvents, err := s.client.GetEvents(ctx, params)
	if err != nil {
		s.mu.Lock()
		if api.IsNetwork(err) {
			s.err = "Network error while loading events"
		} else {
			s.err = "Failed to load events: " + err.Error()
		}
		s.mu.Unlock()
		s.notifyFailure(err, "Failed to load events")
		return err
	}

	events := make([]models.Event, 0, len(wireEvents))
	for _, wireEvent := range wireEvents {
		event := transform.EventFromWire(wireEvent)
		event.Tags = s.fetchTagNames(ctx, wireEvent.ID)
		events = append(events, event)
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
	return nil
}

// Create posts a new event and prepends the server's version of it.
// Tag linkage runs afterwards, best-effort.
func (s *Events) Create(ctx context.Context, event models.Event, endDate *time.Time) bool {
	created, err := s.client.CreateEvent(ctx, transform.EventToWire(event, endDate))
	if err != nil {
		s.notifyFailure(err, "Failed to create event")
		return false
	}

	newEvent := transform.EventFromWire(created)
	newEvent.Tags = event.Tags // desired names, linkage catches up below

	if len(event.Tags) > 0 {
		s.syncTags(ctx, created.ID, event.Tags, false)
	}

	s.mu.Lock()
	s.events = append([]models.Event{newEvent}, s.events...)
	s.mu.Unlock()

	s.notifier.Notify("Event created successfully!", notify.Success)
	return true
}

// Update puts the event by id and replaces the matching element in
// place, then reconciles tag linkage (unlink everything, relink).
func (s *Events) Update(ctx context.Context, event models.Event, endDate *time.Time) bool {
	updated, err := s.client.UpdateEvent(ctx, event.ID, transform.EventUpdateToWire(event, endDate))
	if err != nil {
		s.notifyFailure(err, "Failed to update event")
		return false
	}

	newEvent := transform.EventFromWire(updated)
	newEvent.Tags = event.Tags

	s.syncTags(ctx, event.ID, event.Tags, true)

	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == event.ID {
			s.events[i] = newEvent
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Notify("Event updated successfully!", notify.Success)
	return true
}

// Delete removes the event server-side and drops it from the collection.
func (s *Events) Delete(ctx context.Context, id string) bool {
	if err := s.client.DeleteEvent(ctx, id); err != nil {
		s.notifyFailure(err, "Failed to delete event")
		return false
	}

	var deleted *models.Event
	s.mu.Lock()
	kept := s.events[:0]
	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			deleted = &e
			continue
		}
		kept = append(kept, s.events[i])
	}
	s.events = kept
	s.mu.Unlock()

	if deleted != nil {
		s.notifier.Notify("\""+deleted.Title+"\" deleted successfully", notify.Success)
	}
	return true
}

// fetchTagNames derives an event's tag names from the join, tolerating
// failure with an empty set.
func (s *Events) fetchTagNames(ctx context.Context, eventID string) []string {
	tags, err := s.client.GetEventTags(ctx, eventID)
	if err != nil {
		s.logger.Warn("loading event tags", "event_id", eventID, "error", err)
		return []string{}
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

// syncTags reconciles the event's server-side tag links with the
// desired tag names. Best-effort by contract: any failure is logged
// and abandons the remaining work without surfacing an error.
//
// With unlinkFirst (the update path) every currently linked tag is
// removed before relinking. Tag names are resolved against a single
// tag-list fetch, reused across the loop; missing tags are created
// with a random palette color, and an already-linked tag id is never
// linked twice.
func (s *Events) syncTags(ctx context.Context, eventID string, names []string, unlinkFirst bool) {
	if unlinkFirst {
		current, err := s.client.GetEventTags(ctx, eventID)
		if err != nil {
			s.logger.Warn("tag sync: fetching current tags", "event_id", eventID, "error", err)
			return
		}
		for _, tag := range current {
			if err := s.client.RemoveTagFromEvent(ctx, eventID, tag.ID); err != nil {
				s.logger.Warn("tag sync: unlinking tag", "event_id", eventID, "tag_id", tag.ID, "error", err)
				return
			}
		}
	}

	if len(names) == 0 {
		return
	}

	allTags, err := s.client.GetTags(ctx)
	if err != nil {
		s.logger.Warn("tag sync: listing tags", "event_id", eventID, "error", err)
		return
	}

	linked := make(map[string]bool)
	for _, name := range names {
		var tagID string
		for _, tag := range allTags {
			if tag.Name == name {
				tagID = tag.ID
				break
			}
		}
		if tagID == "" {
			created, err := s.client.CreateTag(ctx, api.CreateTagRequest{
				Name:  name,
				Color: tagPalette[rand.Intn(len(tagPalette))],
			})
			if err != nil {
				s.logger.Warn("tag sync: creating tag", "event_id", eventID, "name", name, "error", err)
				return
			}
			allTags = append(allTags, created)
			tagID = created.ID
		}

		if linked[tagID] {
			continue
		}
		if _, err := s.client.AddTagToEvent(ctx, eventID, tagID); err != nil {
			s.logger.Warn("tag sync: linking tag", "event_id", eventID, "tag_id", tagID, "error", err)
			return
		}
		linked[tagID] = true
	}
}

func (s *Events) notifyFailure(err error, message string) {
	if api.IsNetwork(err) {
		s.notifier.Notify("Network error. Please check your connection.", notify.Error)
		return
	}
	s.notifier.Notify(message, notify.Error)
}
