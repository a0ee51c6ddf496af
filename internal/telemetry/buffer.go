package telemetry

import (
	"sync"
	"time"
)

// Snapshot is the node's best-known telemetry state: the most recently
// acquired sample plus its freshness status. Stale indicates the sample
// predates one or more failed acquisition cycles.
type Snapshot struct {
	Sample    ScaledSample `json:"sample"`
	Stale     bool         `json:"stale"`
	Failures  uint32       `json:"failures"` // consecutive failed cycles
	UpdatedAt time.Time    `json:"updated_at"`
}

// Buffer holds the current snapshot. The acquisition loop is the only
// writer; publishers read concurrently from their own goroutines, so the
// snapshot is always replaced whole under the lock, never mutated
// field-by-field. A reader can never observe a mix of two cycles.
type Buffer struct {
	mu   sync.RWMutex
	snap Snapshot
}

// Update replaces the snapshot with a fresh sample and clears the
// failure state.
func (b *Buffer) Update(s ScaledSample, now time.Time) {
	b.mu.Lock()
	b.snap = Snapshot{Sample: s, UpdatedAt: now}
	b.mu.Unlock()
}

// MarkStale records a failed acquisition cycle. The last good sample is
// retained intentionally; only the status changes.
func (b *Buffer) MarkStale() {
	b.mu.Lock()
	b.snap.Stale = true
	b.snap.Failures++
	b.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}
