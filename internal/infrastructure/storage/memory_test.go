// internal/infrastructure/storage/memory_test.go
package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Put(ctx, "k", payload{Name: "shirt", Count: 2}))
	assert.True(t, store.Has("k"))

	var got payload
	require.NoError(t, store.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "shirt", Count: 2}, got)

	require.NoError(t, store.Delete(ctx, "k"))
	assert.False(t, store.Has("k"))
	assert.ErrorIs(t, store.Get(ctx, "k", &got), ErrNotFound)
}

func TestMemoryStoreDeleteMissingKey(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "absent"))
}

func TestSnapshotKeys(t *testing.T) {
	assert.Equal(t, "cart:s1:items", CartItemsKey("s1"))
	assert.Equal(t, "cart:s1:shipping", ShippingAddressKey("s1"))
	assert.Equal(t, "session:s1", SessionKey("s1"))
}
