package repositories

import (
	"context"

	"github.com/medicare-app/backend/internal/domain/entities"
)

// HistoryRepository defines the interface for consultation history operations.
// Records are append-only: there is no update or single-record delete.
type HistoryRepository interface {
	// Create appends exactly one record and returns its assigned ID.
	Create(ctx context.Context, record *entities.HistoryRecord) (int64, error)

	// ListByUser returns the user's records newest first. Records sharing a
	// creation timestamp are ordered most-recently-inserted first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.HistoryRecord, error)
}
