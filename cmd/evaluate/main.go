package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/medicare-app/backend/internal/adapters/model"
	"github.com/medicare-app/backend/internal/catalog"
	"github.com/medicare-app/backend/internal/evaluation"
	"github.com/medicare-app/backend/pkg/config"
)

func main() {
	var goldenPath string
	var minAccuracy float64
	var minConfidence float64
	flag.StringVar(&goldenPath, "cases", "config/golden_cases.json", "path to the golden case set")
	flag.Float64Var(&minAccuracy, "min-accuracy", 0.8, "minimum accuracy guardrail")
	flag.Float64Var(&minConfidence, "min-confidence", 0.3, "minimum mean confidence guardrail")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	classifier, err := model.LoadBundle(cfg.Model.ArtifactPath)
	if err != nil {
		log.Fatalf("Failed to load model artifact: %v", err)
	}

	symptomCatalog, err := catalog.New(classifier.Schema(), catalog.DefaultGroups(), catalog.DefaultOverrides())
	if err != nil {
		log.Fatalf("Failed to build symptom catalog: %v", err)
	}

	cases, err := evaluation.LoadGoldenCases(goldenPath)
	if err != nil {
		log.Fatalf("Failed to load golden cases: %v", err)
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		log.Fatalf("Invalid golden cases: %v", err)
	}

	runner := evaluation.NewRunner(symptomCatalog, classifier)
	summary, err := runner.Run(context.Background(), cases)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	guardrails := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MinAccuracy:       minAccuracy,
		MinMeanConfidence: minConfidence,
	})
	if violations := guardrails.Violations(summary); len(violations) > 0 {
		for _, v := range violations {
			log.Printf("Guardrail violation: %s", v)
		}
		os.Exit(1)
	}
}
