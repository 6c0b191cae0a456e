package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/domain/providers"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

// bundleFile is the on-disk layout of the versioned model artifact exported
// by the training pipeline: feature schema, standard-scaler parameters,
// multinomial logistic-regression weights and the ordered class labels.
type bundleFile struct {
	Version      string      `json:"version"`
	FeatureNames []string    `json:"feature_names"`
	Scaler       scalerFile  `json:"scaler"`
	Classes      []string    `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

type scalerFile struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Bundle wraps the pretrained artifact behind the classifier contract.
// It is loaded once at startup, immutable afterwards, and safe to share
// across concurrent requests without locking.
type Bundle struct {
	version      string
	featureNames []string
	mean         []float64
	scale        []float64
	classes      []string
	coefficients [][]float64
	intercepts   []float64
}

// LoadBundle reads and validates the model artifact. Any missing or
// malformed artifact is a startup failure, not a per-request one.
func LoadBundle(path string) (providers.ClassifierProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}
	return ParseBundle(data)
}

// ParseBundle validates raw artifact bytes into a usable bundle.
func ParseBundle(data []byte) (providers.ClassifierProvider, error) {
	var file bundleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	n := len(file.FeatureNames)
	if n == 0 {
		return nil, fmt.Errorf("model artifact has no feature schema")
	}
	if len(file.Classes) == 0 {
		return nil, fmt.Errorf("model artifact has no classes")
	}
	if len(file.Scaler.Mean) != n || len(file.Scaler.Scale) != n {
		return nil, fmt.Errorf("scaler dimensions (%d/%d) do not match %d features",
			len(file.Scaler.Mean), len(file.Scaler.Scale), n)
	}
	for i, s := range file.Scaler.Scale {
		if s == 0 {
			return nil, fmt.Errorf("scaler scale is zero at feature %d (%s)", i, file.FeatureNames[i])
		}
	}
	if len(file.Coefficients) != len(file.Classes) {
		return nil, fmt.Errorf("coefficient rows (%d) do not match %d classes",
			len(file.Coefficients), len(file.Classes))
	}
	for i, row := range file.Coefficients {
		if len(row) != n {
			return nil, fmt.Errorf("coefficient row %d has %d columns, want %d", i, len(row), n)
		}
	}
	if len(file.Intercepts) != len(file.Classes) {
		return nil, fmt.Errorf("intercepts (%d) do not match %d classes",
			len(file.Intercepts), len(file.Classes))
	}

	return &Bundle{
		version:      file.Version,
		featureNames: file.FeatureNames,
		mean:         file.Scaler.Mean,
		scale:        file.Scaler.Scale,
		classes:      file.Classes,
		coefficients: file.Coefficients,
		intercepts:   file.Intercepts,
	}, nil
}

// Predict scores one feature vector and returns the top class with its
// probability mass. Ties keep the first class in training order, so repeated
// calls with the same vector always agree.
func (b *Bundle) Predict(vector []float64) (entities.Prediction, error) {
	if len(vector) != len(b.featureNames) {
		return entities.Prediction{}, apperrors.NewSchemaMismatchError(
			fmt.Sprintf("vector has %d features, artifact %s expects %d",
				len(vector), b.version, len(b.featureNames)))
	}

	// Scaling uses the parameters captured at training time.
	scaled := make([]float64, len(vector))
	for i, v := range vector {
		scaled[i] = (v - b.mean[i]) / b.scale[i]
	}

	logits := make([]float64, len(b.classes))
	for class, row := range b.coefficients {
		sum := b.intercepts[class]
		for i, w := range row {
			sum += w * scaled[i]
		}
		logits[class] = sum
	}

	probabilities := softmax(logits)

	best := 0
	for i, p := range probabilities {
		if p > probabilities[best] {
			best = i
		}
	}

	return entities.Prediction{
		Label:      b.classes[best],
		Confidence: probabilities[best],
	}, nil
}

// Schema returns the ordered feature identifiers the model was trained on.
func (b *Bundle) Schema() []string {
	return b.featureNames
}

// Classes returns the known class labels in training order.
func (b *Bundle) Classes() []string {
	return b.classes
}

// Version returns the artifact version string.
func (b *Bundle) Version() string {
	return b.version
}

// softmax converts logits into a probability distribution. Shifting by the
// max keeps the exponentials finite.
func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}

	probabilities := make([]float64, len(logits))
	var total float64
	for i, l := range logits {
		probabilities[i] = math.Exp(l - max)
		total += probabilities[i]
	}
	for i := range probabilities {
		probabilities[i] /= total
	}
	return probabilities
}
