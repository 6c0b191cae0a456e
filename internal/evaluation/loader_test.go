package evaluation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/evaluation"
)

func writeGoldenFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golden_cases.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGoldenCases(t *testing.T) {
	path := writeGoldenFile(t, `[
		{"id":"c1","symptoms":["Itching","Skin Rash"],"expected":"Fungal infection","difficulty":"easy"},
		{"id":"c2","symptoms":["Headache"],"expected":"Migraine","difficulty":"medium"}
	]`)

	cases, err := evaluation.LoadGoldenCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "c1", cases[0].ID)
	assert.Equal(t, []string{"Itching", "Skin Rash"}, cases[0].Symptoms)
	assert.Equal(t, "Fungal infection", cases[0].Expected)
}

func TestLoadGoldenCases_MissingFile(t *testing.T) {
	_, err := evaluation.LoadGoldenCases(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadGoldenCases_InvalidJSON(t *testing.T) {
	path := writeGoldenFile(t, `{not json`)
	_, err := evaluation.LoadGoldenCases(path)
	require.Error(t, err)
}

func TestValidateGoldenCases(t *testing.T) {
	valid := []evaluation.GoldenCase{
		{ID: "c1", Symptoms: []string{"Itching"}, Expected: "Fungal infection", Difficulty: "easy"},
		{ID: "c2", Symptoms: []string{"Headache"}, Expected: "Migraine", Difficulty: "hard"},
	}
	assert.NoError(t, evaluation.ValidateGoldenCases(valid))

	t.Run("missing id", func(t *testing.T) {
		cases := []evaluation.GoldenCase{{Symptoms: []string{"Itching"}, Expected: "x", Difficulty: "easy"}}
		assert.Error(t, evaluation.ValidateGoldenCases(cases))
	})

	t.Run("duplicate id", func(t *testing.T) {
		cases := []evaluation.GoldenCase{
			{ID: "c1", Symptoms: []string{"Itching"}, Expected: "x", Difficulty: "easy"},
			{ID: "c1", Symptoms: []string{"Headache"}, Expected: "y", Difficulty: "easy"},
		}
		assert.Error(t, evaluation.ValidateGoldenCases(cases))
	})

	t.Run("empty symptoms", func(t *testing.T) {
		cases := []evaluation.GoldenCase{{ID: "c1", Expected: "x", Difficulty: "easy"}}
		assert.Error(t, evaluation.ValidateGoldenCases(cases))
	})

	t.Run("missing expected", func(t *testing.T) {
		cases := []evaluation.GoldenCase{{ID: "c1", Symptoms: []string{"Itching"}, Difficulty: "easy"}}
		assert.Error(t, evaluation.ValidateGoldenCases(cases))
	})

	t.Run("bad difficulty", func(t *testing.T) {
		cases := []evaluation.GoldenCase{{ID: "c1", Symptoms: []string{"Itching"}, Expected: "x", Difficulty: "impossible"}}
		assert.Error(t, evaluation.ValidateGoldenCases(cases))
	})
}
