package evaluation

import (
	"context"
	"time"

	"github.com/medicare-app/backend/internal/catalog"
	"github.com/medicare-app/backend/internal/domain/providers"
)

// Runner evaluates a classifier against a set of golden cases, using the
// same catalog-driven vectorization the serving path uses.
type Runner struct {
	catalog    *catalog.Catalog
	classifier providers.ClassifierProvider
}

func NewRunner(cat *catalog.Catalog, classifier providers.ClassifierProvider) *Runner {
	return &Runner{catalog: cat, classifier: classifier}
}

func (r *Runner) Run(ctx context.Context, cases []GoldenCase) (*EvalSummary, error) {
	summary := &EvalSummary{
		TotalCases:   len(cases),
		ByDifficulty: make(map[string]*DifficultySummary),
	}

	results := make([]EvalResult, 0, len(cases))
	for _, gc := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vector := r.catalog.Vector(gc.Symptoms)

		start := time.Now()
		prediction, err := r.classifier.Predict(vector)
		duration := time.Since(start)
		if err != nil {
			return nil, err
		}

		result := EvalResult{
			CaseID:     gc.ID,
			Expected:   gc.Expected,
			Predicted:  prediction.Label,
			Confidence: prediction.Confidence,
			Correct:    prediction.Label == gc.Expected,
			Latency:    duration,
		}
		results = append(results, result)

		r.updateSummary(summary, gc.Difficulty, result)
	}

	r.finalizeSummary(summary, results)
	return summary, nil
}

func (r *Runner) updateSummary(s *EvalSummary, difficulty string, res EvalResult) {
	if res.Correct {
		s.CorrectCases++
	}
	s.AvgConfidence += res.Confidence
	s.AvgLatency += res.Latency

	if _, ok := s.ByDifficulty[difficulty]; !ok {
		s.ByDifficulty[difficulty] = &DifficultySummary{}
	}
	ds := s.ByDifficulty[difficulty]
	ds.Count++
	if res.Correct {
		ds.Correct++
	}
}

func (r *Runner) finalizeSummary(s *EvalSummary, results []EvalResult) {
	if s.TotalCases > 0 {
		n := float64(s.TotalCases)
		s.Accuracy = float64(s.CorrectCases) / n
		s.AvgConfidence /= n
		s.AvgLatency /= time.Duration(s.TotalCases)
	}

	for _, ds := range s.ByDifficulty {
		if ds.Count > 0 {
			ds.Accuracy = float64(ds.Correct) / float64(ds.Count)
		}
	}

	s.Confusions = ConfusionCounts(results)
}
