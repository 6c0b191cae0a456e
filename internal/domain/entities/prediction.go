package entities

import "time"

// Prediction is the outcome of one classifier invocation. Confidence is the
// probability mass of the selected class, always in [0,1]. Percentage
// formatting is a display concern and does not happen here.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// HistoryRecord is one persisted consultation. Records are append-only and
// owned by exactly one user.
type HistoryRecord struct {
	ID         int64     `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Symptoms   string    `json:"symptoms" db:"symptoms"`
	Disease    string    `json:"disease" db:"disease"`
	Confidence float64   `json:"confidence" db:"confidence"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// PredictionResponse is what the orchestrator hands back to the web layer:
// the prediction, the selection as it resolved (for UI re-display), and a
// best-effort encyclopedia summary that may be empty.
type PredictionResponse struct {
	Label      string   `json:"label"`
	Confidence float64  `json:"confidence"`
	Symptoms   []string `json:"symptoms"`
	Summary    string   `json:"summary,omitempty"`
	Recorded   bool     `json:"recorded"`
}
