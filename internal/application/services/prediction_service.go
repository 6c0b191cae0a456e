package services

import (
	"context"
	"strings"
	"time"

	"github.com/medicare-app/backend/internal/catalog"
	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/domain/providers"
	"github.com/medicare-app/backend/internal/domain/repositories"
	"github.com/medicare-app/backend/internal/infrastructure/observability"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// PredictionService orchestrates one consultation: validate the selection,
// build the feature vector, run the classifier, enrich the result, and record
// the consultation for signed-in users. The summary is best-effort; the
// history write is not, a failed write fails the request so the user never
// sees a result the record disagrees with.
type PredictionService struct {
	catalog       *catalog.Catalog
	classifier    providers.ClassifierProvider
	summaries     providers.SummaryProvider
	history       repositories.HistoryRepository
	metrics       *observability.Metrics
	enrichTimeout time.Duration
}

// NewPredictionService creates a new prediction service. summaries may be nil
// when enrichment is disabled.
func NewPredictionService(
	cat *catalog.Catalog,
	classifier providers.ClassifierProvider,
	summaries providers.SummaryProvider,
	history repositories.HistoryRepository,
	metrics *observability.Metrics,
	enrichTimeout time.Duration,
) *PredictionService {
	if enrichTimeout <= 0 {
		enrichTimeout = 2 * time.Second
	}
	return &PredictionService{
		catalog:       cat,
		classifier:    classifier,
		summaries:     summaries,
		history:       history,
		metrics:       metrics,
		enrichTimeout: enrichTimeout,
	}
}

// Predict runs the full pipeline for one selection. userID is empty for
// anonymous requests; those are never recorded.
func (s *PredictionService) Predict(ctx context.Context, userID string, selection []string) (*entities.PredictionResponse, error) {
	cleaned := make([]string, 0, len(selection))
	for _, entry := range selection {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return nil, apperrors.NewValidationError("at least one symptom must be selected")
	}

	// Unknown entries are dropped silently, but a selection where nothing
	// resolved would score an all-zero vector with a real-looking
	// confidence. Reject it and let the user pick again.
	resolved := s.catalog.ResolveSelection(cleaned)
	if len(resolved) == 0 {
		return nil, apperrors.NewValidationError("no recognized symptoms in selection")
	}

	vector := s.catalog.Vector(cleaned)

	start := time.Now()
	prediction, err := s.classifier.Predict(vector)
	if err != nil {
		observability.RecordPredictionMetric(ctx, s.metrics, "error", time.Since(start))
		return nil, err
	}
	observability.RecordPredictionMetric(ctx, s.metrics, "success", time.Since(start))

	response := &entities.PredictionResponse{
		Label:      prediction.Label,
		Confidence: prediction.Confidence,
		Symptoms:   resolved,
		Summary:    s.summarize(ctx, prediction.Label),
	}

	if userID != "" {
		record := &entities.HistoryRecord{
			UserID:     userID,
			Symptoms:   strings.Join(resolved, ", "),
			Disease:    prediction.Label,
			Confidence: prediction.Confidence,
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := s.history.Create(ctx, record); err != nil {
			return nil, err
		}
		response.Recorded = true
	}

	return response, nil
}

// ListHistory returns the user's past consultations, newest first.
func (s *PredictionService) ListHistory(ctx context.Context, userID string, limit, offset int) ([]*entities.HistoryRecord, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.history.ListByUser(ctx, userID, limit, offset)
}

// summarize fetches an encyclopedia summary under its own deadline. Any
// failure degrades to an empty summary.
func (s *PredictionService) summarize(ctx context.Context, label string) string {
	if s.summaries == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, s.enrichTimeout)
	defer cancel()

	summary, err := s.summaries.Summarize(ctx, label)
	if err != nil {
		observability.RecordEnrichmentFailure(ctx, s.metrics)
		logger := observability.LoggerFromContext(ctx)
		logger.Warn().Err(err).Str("label", label).Msg("summary enrichment failed")
		return ""
	}
	return summary
}
