package sse

import (
	"sync"
)

// A slow reader drops events rather than blocking publishers.
const streamBuffer = 10

// Event is one server-sent event. UserID is set by the hub on
// broadcast so handlers can log who received what.
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// Hub fans events out to connected dashboard streams, keyed by user.
// One user can hold several streams (multiple tabs).
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for the user. The returned cleanup must be
// called when the connection ends; it closes the channel.
func (h *Hub) Subscribe(userID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, streamBuffer)
	if h.streams[userID] == nil {
		h.streams[userID] = make(map[chan Event]struct{})
	}
	h.streams[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.streams[userID], ch)
		close(ch)
		if len(h.streams[userID]) == 0 {
			delete(h.streams, userID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to one user's streams.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.UserID = userID
	for ch := range h.streams[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Broadcast sends an event to every connected stream. Used for
// store-wide announcements like bulletin posts and schedule changes.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for userID, subs := range h.streams {
		perUser := event
		perUser.UserID = userID
		for ch := range subs {
			select {
			case ch <- perUser:
			default:
			}
		}
	}
}
