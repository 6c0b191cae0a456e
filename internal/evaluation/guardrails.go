package evaluation

import "fmt"

// GuardrailConfig sets the minimum quality bar a model artifact must clear
// before it ships.
type GuardrailConfig struct {
	MinAccuracy       float64
	MinMeanConfidence float64
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	return &Guardrails{config: config}
}

// Violations returns a human-readable list of guardrail breaches, empty when
// the summary passes.
func (g *Guardrails) Violations(summary *EvalSummary) []string {
	var violations []string

	if summary.Accuracy < g.config.MinAccuracy {
		violations = append(violations, fmt.Sprintf(
			"accuracy %.3f below minimum %.3f", summary.Accuracy, g.config.MinAccuracy))
	}
	if summary.AvgConfidence < g.config.MinMeanConfidence {
		violations = append(violations, fmt.Sprintf(
			"mean confidence %.3f below minimum %.3f", summary.AvgConfidence, g.config.MinMeanConfidence))
	}

	return violations
}

// Pass reports whether the summary clears every guardrail.
func (g *Guardrails) Pass(summary *EvalSummary) bool {
	return len(g.Violations(summary)) == 0
}
