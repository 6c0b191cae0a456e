package evaluation

import "time"

// GoldenCase is one labeled evaluation case: a symptom selection and the
// condition the model is expected to predict for it.
type GoldenCase struct {
	ID         string   `json:"id"`
	Symptoms   []string `json:"symptoms"`
	Expected   string   `json:"expected"`
	Difficulty string   `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the evaluation outcome for a single case.
type EvalResult struct {
	CaseID     string
	Expected   string
	Predicted  string
	Confidence float64
	Correct    bool
	Latency    time.Duration
}

// EvalSummary holds aggregate metrics across all golden cases.
type EvalSummary struct {
	TotalCases    int
	CorrectCases  int
	Accuracy      float64
	AvgConfidence float64
	AvgLatency    time.Duration
	ByDifficulty  map[string]*DifficultySummary
	Confusions    []Confusion
}

// DifficultySummary holds metrics grouped by case difficulty.
type DifficultySummary struct {
	Count    int
	Correct  int
	Accuracy float64
}

// Confusion is one observed expected/predicted mismatch and how often it
// occurred.
type Confusion struct {
	Expected  string `json:"expected"`
	Predicted string `json:"predicted"`
	Count     int    `json:"count"`
}
