package providers

import (
	"context"
	"errors"
)

// ErrSummaryUnavailable is returned when no summary exists for a label or the
// encyclopedia could not be reached in time. Callers absorb it; it never
// fails a prediction.
var ErrSummaryUnavailable = errors.New("summary unavailable")

// SummaryProvider fetches a short encyclopedia summary for a predicted
// condition. Implementations must be time-bounded via ctx and must not panic.
type SummaryProvider interface {
	Summarize(ctx context.Context, label string) (string, error)
}
