// internal/domain/cart/manager_test.go
package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func TestManagerSeedsBeforePublishing(t *testing.T) {
	ctx := context.Background()
	snapshots := storage.NewMemoryStore()

	// A persisted cart from an earlier process
	require.NoError(t, snapshots.Put(ctx, storage.CartItemsKey(testSessionID), []CartItem{
		{ProductID: "1", Slug: "nike-slim-shirt", Price: 120, Quantity: 2, CountInStock: 10},
	}))

	manager := NewManager(testDirectory(), testCalculator(), snapshots, testLogger())

	// The store handed out on first access is already restored, so a
	// command applied immediately merges with the snapshot instead of
	// being clobbered by it
	store := manager.Session(ctx, testSessionID)
	require.Len(t, store.Cart().Items, 1)
	assert.Equal(t, 2, store.Cart().Items[0].Quantity)

	require.NoError(t, store.AddItem(ctx, shirt()))
	assert.Equal(t, 3, store.Cart().Items[0].Quantity)
}

func TestManagerReturnsSameStorePerSession(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(testDirectory(), testCalculator(), storage.NewMemoryStore(), testLogger())

	first := manager.Session(ctx, testSessionID)
	second := manager.Session(ctx, testSessionID)
	assert.Same(t, first, second)

	other := manager.Session(ctx, "another-session")
	assert.NotSame(t, first, other)
}
