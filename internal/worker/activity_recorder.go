// Package worker hosts background consumers of domain events.
package worker

import (
	"context"
	"sync"

	"github.com/spec-kit/helpdesk-service/internal/events"
)

// recorded caps the activity buffer; older entries are discarded.
const recordedCapacity = 50

// ActivityRecorder keeps a bounded log of recent domain events for the
// dashboard activity feed.
type ActivityRecorder struct {
	mu      sync.RWMutex
	entries []events.Event
}

// NewActivityRecorder constructs an empty recorder.
func NewActivityRecorder() *ActivityRecorder {
	return &ActivityRecorder{}
}

// StartActivityRecorder subscribes the recorder to every event type.
func StartActivityRecorder(recorder *ActivityRecorder, dispatcher events.Dispatcher) {
	if recorder == nil || dispatcher == nil {
		return
	}
	dispatcher.SubscribeAll(events.AllTypes(), recorder.record)
}

func (r *ActivityRecorder) record(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, event)
	if len(r.entries) > recordedCapacity {
		r.entries = r.entries[len(r.entries)-recordedCapacity:]
	}
	return nil
}

// Recent returns up to n events, newest first.
func (r *ActivityRecorder) Recent(n int) []events.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]events.Event, 0, n)
	for i := len(r.entries) - 1; i >= len(r.entries)-n; i-- {
		out = append(out, r.entries[i])
	}
	return out
}
