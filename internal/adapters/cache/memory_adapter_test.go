package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/adapters/cache"
)

func TestMemoryAdapter_RoundTrip(t *testing.T) {
	adapter := cache.NewMemoryAdapter()
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "k", []byte("value"), 0))

	value, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)

	exists, err := adapter.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, adapter.Delete(ctx, "k"))

	exists, err = adapter.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryAdapter_IncrementCounts(t *testing.T) {
	adapter := cache.NewMemoryAdapter()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := adapter.Increment(ctx, "counter", 60)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	// Counters are independent per key.
	count, err := adapter.Increment(ctx, "other", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
