package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/medicare-app/backend/internal/adapters/model"
	"github.com/medicare-app/backend/internal/adapters/search"
	"github.com/medicare-app/backend/internal/catalog"
	"github.com/medicare-app/backend/internal/infrastructure/clients/typesense"
	"github.com/medicare-app/backend/pkg/config"
)

// The indexer rebuilds the Typesense symptom collection from the model
// artifact's schema. Run it once after a model rollout, or on an interval
// when the search cluster is periodically recycled.
func main() {
	var intervalFlag string
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	var err error
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatalf("Invalid interval %q: %v", intervalValue, err)
		}
		if interval <= 0 {
			log.Fatalf("Interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx); err != nil {
			log.Printf("Reindex failed: %v", err)
		}

		if interval <= 0 {
			break
		}

		log.Printf("Reindex complete. Next run in %s.", interval)

		select {
		case <-ctx.Done():
			log.Println("Shutting down indexer")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	classifier, err := model.LoadBundle(cfg.Model.ArtifactPath)
	if err != nil {
		return err
	}

	symptomCatalog, err := catalog.New(classifier.Schema(), catalog.DefaultGroups(), catalog.DefaultOverrides())
	if err != nil {
		return err
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		return err
	}

	adapter := search.NewTypesenseAdapter(tsClient)
	if err := adapter.InitSchema(ctx); err != nil {
		return err
	}

	symptoms := symptomCatalog.Symptoms()
	if err := adapter.IndexCatalog(ctx, symptoms); err != nil {
		return err
	}

	log.Printf("Indexed %d symptoms", len(symptoms))
	return nil
}
