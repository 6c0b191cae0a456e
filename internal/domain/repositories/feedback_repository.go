package repositories

import (
	"context"

	"github.com/medicare-app/backend/internal/domain/entities"
)

// FeedbackRepository defines the interface for feedback operations.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entities.Feedback) error

	// List returns feedback entries newest first, for the admin review page.
	List(ctx context.Context, limit, offset int) ([]*entities.Feedback, error)
}
