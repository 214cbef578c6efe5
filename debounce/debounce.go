// Package debounce suppresses duplicate re-reads of the same scan payload
// within a fixed time window. A camera source keeps decoding while a code
// stays in frame; the filter keeps that stream from re-triggering lookups.
package debounce

import (
	"sync"
	"time"
)

// Filter rejects a payload when it equals the immediately preceding accepted
// payload and less than the window has elapsed since that payload was
// accepted. A zero or negative window disables filtering while keeping the
// call sites unchanged (every payload is accepted).
type Filter struct {
	mu           sync.Mutex
	window       time.Duration
	lastPayload  string
	lastAccepted time.Time
}

func New(window time.Duration) *Filter {
	return &Filter{window: window}
}

// Accept reports whether the payload should trigger a lookup. Accepting
// records (payload, ts) as the new reference point; a different payload
// always accepts and resets the reference even inside the window.
func (f *Filter) Accept(payload string, ts time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.window > 0 && payload == f.lastPayload && !f.lastAccepted.IsZero() &&
		ts.Sub(f.lastAccepted) < f.window {
		return false
	}

	f.lastPayload = payload
	f.lastAccepted = ts
	return true
}
