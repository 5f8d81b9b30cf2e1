package render

import (
	"context"
	"fmt"

	"github.com/mfedotov/renderscope/pkg/db"
)

// NullHistory is the no-op persistence used when no database is configured.
// Reads return empty results, render writes succeed without assigning an
// identifier, so generation keeps working with the learning loop disabled.
// Feedback is the one operation that must fail loudly here.
type NullHistory struct{}

// CreateRender accepts the record without storing it; GUID stays empty so the
// caller reports an absent identifier
func (NullHistory) CreateRender(_ context.Context, _ *db.Render) error { return nil }

// UpdateFeedback always fails, there is no record to attach feedback to
func (NullHistory) UpdateFeedback(_ context.Context, guid string, _ int, _ []string) error {
	return fmt.Errorf("%w: %s (render history is disabled)", db.ErrNotFound, guid)
}

// TopRatedPrompts returns no examples
func (NullHistory) TopRatedPrompts(_ context.Context, _, _ string, _ int) ([]string, error) {
	return nil, nil
}

// LowRatedRenders returns no constraint sources
func (NullHistory) LowRatedRenders(_ context.Context, _ string, _ int) ([]db.Render, error) {
	return nil, nil
}

// ListRenders returns an empty history
func (NullHistory) ListRenders(_ context.Context, _, _ string, _ int) ([]db.Render, error) {
	return []db.Render{}, nil
}

// FeedbackStats returns zeroed statistics
func (NullHistory) FeedbackStats(_ context.Context) (*db.FeedbackStats, error) {
	return &db.FeedbackStats{ByRating: map[string]int64{}}, nil
}
