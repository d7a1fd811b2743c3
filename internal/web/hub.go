package web

import (
	"sync"

	"github.com/baboonytim/redsim/internal/sim"
)

// Hub fans out summary records to websocket subscribers and keeps the
// full result set for late joiners and the results API.
type Hub struct {
	mu      sync.Mutex
	records []sim.SummaryRecord
	subs    map[chan sim.SummaryRecord]struct{}
	running bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan sim.SummaryRecord]struct{})}
}

// Publish appends a finished record and pushes it to every subscriber.
// Slow subscribers are skipped rather than blocking the runner.
func (h *Hub) Publish(rec sim.SummaryRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, rec)
	for ch := range h.subs {
		select {
		case ch <- rec:
		default:
		}
	}
}

// Records returns a copy of every record published so far.
func (h *Hub) Records() []sim.SummaryRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]sim.SummaryRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Reset clears stored records and marks a run as in progress.
func (h *Hub) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
	h.running = true
}

// Finish marks the current run as complete.
func (h *Hub) Finish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.running = false
}

// Running reports whether a sweep is currently in progress.
func (h *Hub) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

// Subscribe registers a new subscriber channel. The caller must call
// the returned cancel function when done.
func (h *Hub) Subscribe() (<-chan sim.SummaryRecord, func()) {
	ch := make(chan sim.SummaryRecord, 64)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}
