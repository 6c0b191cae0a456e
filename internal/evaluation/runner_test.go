package evaluation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/catalog"
	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/evaluation"
)

// echoClassifier predicts by the first hot feature, which makes the expected
// outcome of each case obvious.
type echoClassifier struct {
	schema []string
	labels map[string]string
}

func (c *echoClassifier) Predict(vector []float64) (entities.Prediction, error) {
	for i, v := range vector {
		if v == 1 {
			return entities.Prediction{Label: c.labels[c.schema[i]], Confidence: 0.9}, nil
		}
	}
	return entities.Prediction{Label: "none", Confidence: 0.1}, nil
}

func (c *echoClassifier) Schema() []string { return c.schema }

func (c *echoClassifier) Classes() []string {
	classes := make([]string, 0, len(c.labels))
	for _, label := range c.labels {
		classes = append(classes, label)
	}
	return classes
}

func TestRunner_Run(t *testing.T) {
	schema := []string{"itching", "headache"}
	cat, err := catalog.New(schema, nil, nil)
	require.NoError(t, err)

	classifier := &echoClassifier{
		schema: schema,
		labels: map[string]string{
			"itching":  "Fungal infection",
			"headache": "Migraine",
		},
	}

	cases := []evaluation.GoldenCase{
		{ID: "c1", Symptoms: []string{"Itching"}, Expected: "Fungal infection", Difficulty: "easy"},
		{ID: "c2", Symptoms: []string{"Headache"}, Expected: "Migraine", Difficulty: "easy"},
		{ID: "c3", Symptoms: []string{"Headache"}, Expected: "GERD", Difficulty: "hard"},
	}

	runner := evaluation.NewRunner(cat, classifier)
	summary, err := runner.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCases)
	assert.Equal(t, 2, summary.CorrectCases)
	assert.InDelta(t, 2.0/3.0, summary.Accuracy, 1e-9)

	require.Contains(t, summary.ByDifficulty, "easy")
	assert.InDelta(t, 1.0, summary.ByDifficulty["easy"].Accuracy, 1e-9)
	require.Contains(t, summary.ByDifficulty, "hard")
	assert.InDelta(t, 0.0, summary.ByDifficulty["hard"].Accuracy, 1e-9)

	require.Len(t, summary.Confusions, 1)
	assert.Equal(t, "GERD", summary.Confusions[0].Expected)
	assert.Equal(t, "Migraine", summary.Confusions[0].Predicted)
}

func TestRunner_CanceledContext(t *testing.T) {
	cat, err := catalog.New([]string{"itching"}, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := evaluation.NewRunner(cat, &echoClassifier{schema: []string{"itching"}})
	_, err = runner.Run(ctx, []evaluation.GoldenCase{
		{ID: "c1", Symptoms: []string{"Itching"}, Expected: "x", Difficulty: "easy"},
	})
	require.Error(t, err)
}
