package entities

// Symptom is one selectable entry of the checklist. The canonical ID is the
// identifier the model was trained on; the display name is what the UI shows.
type Symptom struct {
	CanonicalID string `json:"canonical_id"`
	DisplayName string `json:"display_name"`
}

// SymptomCategory groups symptoms for checklist display. Order is stable and
// controlled by the catalog configuration.
type SymptomCategory struct {
	Name     string    `json:"name"`
	Symptoms []Symptom `json:"symptoms"`
}
