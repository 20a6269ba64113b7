// Package stores contains the application's data stores. State is
// process-local memory only; nothing survives exit.
package stores

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/appraise/internal/core/review"
)

// ReviewStore is the single source of truth for review records. It holds
// an ordered collection plus the edit-mode flag.
//
// Add simulates a remote write with a fixed latency and commits from a
// timer goroutine, so the store is internally synchronized. Everything
// else is synchronous; the UI event loop serializes all calls.
type ReviewStore struct {
	mu       sync.Mutex
	records  []review.Review
	editing  bool
	inFlight int
	latency  time.Duration
}

// NewReviewStore creates an empty store. latency is the simulated write
// delay applied by Add.
func NewReviewStore(latency time.Duration) *ReviewStore {
	return &ReviewStore{latency: latency}
}

// Add appends a record after the simulated write latency elapses. The
// operation cannot fail and cannot be cancelled: once called, the record
// will land. Concurrent in-flight adds each commit independently, in the
// order their delays elapse. Blocks the calling goroutine; run it from a
// background command.
func (s *ReviewStore) Add(r review.Review) {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()

	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	s.records = append(s.records, r)
	log.Debug().Str("cmp", "reviewstore").Str("id", r.ID).Int("len", len(s.records)).Msg("review added")
}

// Edit replaces the record with a matching ID in place, preserving its
// position. A missing ID is a silent no-op.
func (s *ReviewStore) Edit(r review.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == r.ID {
			s.records[i] = r
			return
		}
	}
	log.Debug().Str("cmp", "reviewstore").Str("id", r.ID).Msg("edit for unknown id ignored")
}

// Delete removes the record with the given ID. Idempotent; a missing ID
// is a silent no-op.
func (s *ReviewStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// SetEditMode sets the edit-mode flag. The store only knows that some
// edit is in progress, not which record; the table controller tracks the
// target.
func (s *ReviewStore) SetEditMode(editing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = editing
}

// Editing returns the edit-mode flag.
func (s *ReviewStore) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// Records returns a snapshot copy of the collection in insertion order.
func (s *ReviewStore) Records() []review.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]review.Review, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of committed records.
func (s *ReviewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// InFlight reports whether any adds are still waiting out their latency.
func (s *ReviewStore) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Seed appends records directly, bypassing the simulated latency.
// Startup preloading only.
func (s *ReviewStore) Seed(records []review.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
}
