//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/adapters/search"
	"github.com/medicare-app/backend/internal/catalog"
)

func TestTypesenseAdapter_IndexAndSearch(t *testing.T) {
	client := newTestTypesenseClient(t)

	adapter := search.NewTypesenseAdapter(client)
	ctx := context.Background()

	require.NoError(t, adapter.InitSchema(ctx))

	cat, err := catalog.New(
		[]string{"itching", "skin_rash", "headache", "high_fever"},
		nil,
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, adapter.IndexCatalog(ctx, cat.Symptoms()))

	results, err := adapter.Search(ctx, "rash", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "skin_rash", results[0].CanonicalID)

	// Typo tolerance is the whole reason the index exists.
	results, err = adapter.Search(ctx, "hedache", 5)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "headache", results[0].CanonicalID)
}
