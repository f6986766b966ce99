// Package history keeps a bounded, session-local record of byte
// sequences the user chose to capture. Nothing here survives the
// process; the tool deliberately persists no state across sessions.
package history

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/framelab/internal/lab/common/clock"
)

// Snapshot is one captured encoding.
type Snapshot struct {
	Protocol string // "dns", "tcp" or "http"
	Label    string
	Bytes    []byte
	Captured time.Time
}

// Store holds snapshots in insertion order with an LRU bound: once the
// capacity is reached, the oldest capture is evicted.
type Store struct {
	lru   *lru.Cache[uint64, Snapshot]
	clock clock.Clock
	next  uint64
}

// New returns a Store holding at most size snapshots.
func New(size int, clk clock.Clock) (*Store, error) {
	cache, err := lru.New[uint64, Snapshot](size)
	if err != nil {
		return nil, err
	}
	return &Store{lru: cache, clock: clk}, nil
}

// Capture copies data into a new snapshot and stores it, evicting the
// oldest entry when the store is full.
func (s *Store) Capture(protocol, label string, data []byte) Snapshot {
	snap := Snapshot{
		Protocol: protocol,
		Label:    label,
		Bytes:    append([]byte(nil), data...),
		Captured: s.clock.Now(),
	}
	s.lru.Add(s.next, snap)
	s.next++
	return snap
}

// Recent returns up to n snapshots, newest first.
func (s *Store) Recent(n int) []Snapshot {
	keys := s.lru.Keys() // oldest to newest
	if n > len(keys) {
		n = len(keys)
	}
	out := make([]Snapshot, 0, n)
	for i := len(keys) - 1; i >= len(keys)-n; i-- {
		if snap, ok := s.lru.Peek(keys[i]); ok {
			out = append(out, snap)
		}
	}
	return out
}

// Len returns the number of snapshots currently held.
func (s *Store) Len() int {
	return s.lru.Len()
}
