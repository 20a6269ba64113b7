package tui

import "github.com/colonyops/appraise/internal/core/review"

// reviewAddedMsg arrives once a simulated-latency add has committed.
type reviewAddedMsg struct {
	record review.Review
}

// statusClearMsg expires the status line. The sequence number guards
// against a stale tick clearing a newer message.
type statusClearMsg struct {
	seq int
}
