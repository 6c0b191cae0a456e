package providers

import (
	"github.com/medicare-app/backend/internal/domain/entities"
)

// ClassifierProvider wraps the pretrained model bundle behind a single
// inference call. Implementations are immutable after construction and safe
// for concurrent use; Predict is stateless per call.
type ClassifierProvider interface {
	// Predict scores one feature vector. The vector length must equal
	// Schema() length; a mismatch is a schema-mismatch error and must not be
	// retried, since it indicates artifact/catalog version skew.
	Predict(vector []float64) (entities.Prediction, error)

	// Schema returns the ordered canonical feature identifiers the model was
	// trained on.
	Schema() []string

	// Classes returns the model's known class labels in training order.
	Classes() []string
}
