// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

const testSessionID = "test-session"

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testCalculator() *pricing.Calculator {
	return pricing.NewCalculator(config.PricingConfig{
		TaxRate:               0.15,
		FlatShippingFee:       10,
		FreeShippingThreshold: 100,
		RoundDecimals:         2,
	})
}

func testDirectory() *user.Directory {
	return user.NewDirectory([]user.User{
		{ID: "1", Name: "Admin", Email: "admin@example.com", IsAdmin: true},
		{ID: "2", Name: "Basic", Email: "user@example.com"},
	})
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	snapshots := storage.NewMemoryStore()
	store := NewStore(testSessionID, testDirectory(), testCalculator(), snapshots, testLogger())
	return store, snapshots
}

func shirt() catalog.Product {
	return catalog.Product{
		ID:           "1",
		Slug:         "nike-slim-shirt",
		Name:         "Nike Slim Shirt",
		Category:     "Shirts",
		Price:        120,
		CountInStock: 10,
	}
}

func pants() catalog.Product {
	return catalog.Product{
		ID:           "2",
		Slug:         "puma-slim-pant",
		Name:         "Puma Slim Pant",
		Category:     "Pants",
		Price:        65,
		CountInStock: 2,
	}
}

func TestAddItemIncrementsOnRepeat(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, shirt()))
	require.NoError(t, store.AddItem(ctx, shirt()))

	cart := store.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, snapshots.Has(storage.CartItemsKey(testSessionID)))
}

func TestAddItemExplicitQuantityReplaces(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Apply(ctx, AddItem{Product: shirt(), Quantity: 5}))
	require.NoError(t, store.Apply(ctx, AddItem{Product: shirt(), Quantity: 3}))

	cart := store.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemStockGuard(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// pants has two in stock
	require.NoError(t, store.AddItem(ctx, pants()))
	require.NoError(t, store.AddItem(ctx, pants()))

	err := store.AddItem(ctx, pants())
	assert.ErrorIs(t, err, ErrStockExceeded)

	// Rejected command leaves the cart unchanged
	cart := store.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.AddItem(ctx, shirt()))

	tests := []struct {
		name      string
		cmd       SetQuantity
		wantErr   error
		wantCount int
	}{
		{"update in range", SetQuantity{ProductID: "1", Quantity: 4}, nil, 4},
		{"zero is invalid", SetQuantity{ProductID: "1", Quantity: 0}, ErrInvalidQuantity, 4},
		{"beyond stock", SetQuantity{ProductID: "1", Quantity: 11}, ErrStockExceeded, 4},
		{"unknown product", SetQuantity{ProductID: "404", Quantity: 1}, ErrItemNotFound, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Apply(ctx, tt.cmd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCount, store.Cart().Items[0].Quantity)
		})
	}
}

func TestRemoveItem(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.AddItem(ctx, shirt()))
	require.NoError(t, store.AddItem(ctx, pants()))

	require.NoError(t, store.Apply(ctx, RemoveItem{ProductID: "1"}))
	cart := store.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].ProductID)

	// Removing an absent item is a no-op, not an error
	assert.NoError(t, store.Apply(ctx, RemoveItem{ProductID: "404"}))
}

func TestClearCartRemovesOnlyItemsSnapshot(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, shirt()))
	require.NoError(t, store.Apply(ctx, SaveShippingAddress{Address: ShippingAddress{
		FullName: "Jo Buyer", Address: "1 Main St", City: "Town", PostalCode: "12345", Country: "US",
	}}))

	require.NoError(t, store.Apply(ctx, ClearCart{}))

	assert.Empty(t, store.Cart().Items)
	assert.False(t, snapshots.Has(storage.CartItemsKey(testSessionID)))
	assert.True(t, snapshots.Has(storage.ShippingAddressKey(testSessionID)))
	assert.NotNil(t, store.Cart().ShippingAddress)
}

func TestPaymentMethodIsNeverPersisted(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Apply(ctx, SavePaymentMethod{Method: "PayPal"}))

	assert.Equal(t, "PayPal", store.Cart().PaymentMethod)
	assert.False(t, snapshots.Has("cart:"+testSessionID+":payment"))

	// A fresh store restored from the same snapshots has no payment method
	restored := NewStore(testSessionID, testDirectory(), testCalculator(), snapshots, testLogger())
	restored.Restore(ctx)
	assert.Empty(t, restored.Cart().PaymentMethod)
}

func TestSignOutKeepsCartItems(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, shirt()))
	require.NoError(t, store.Apply(ctx, SaveShippingAddress{Address: ShippingAddress{
		FullName: "Jo Buyer", Address: "1 Main St", City: "Town", PostalCode: "12345", Country: "US",
	}}))
	require.NoError(t, store.Apply(ctx, SignIn{Session: user.Session{Email: "user@example.com"}}))

	require.NoError(t, store.SignOut(ctx))

	assert.Nil(t, store.Session())
	assert.Nil(t, store.Cart().ShippingAddress)
	assert.False(t, snapshots.Has(storage.SessionKey(testSessionID)))
	assert.False(t, snapshots.Has(storage.ShippingAddressKey(testSessionID)))

	// Cart items survive in memory and in storage
	assert.Len(t, store.Cart().Items, 1)
	assert.True(t, snapshots.Has(storage.CartItemsKey(testSessionID)))
}

func TestSignUpRejectsKnownEmail(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.Apply(ctx, SignUp{
		Email:   "User@Example.com",
		Session: user.Session{Email: "User@Example.com"},
	})
	assert.ErrorIs(t, err, ErrDuplicateAccount)
	assert.Nil(t, store.Session())

	require.NoError(t, store.Apply(ctx, SignUp{
		Email:   "new@example.com",
		Session: user.Session{Email: "new@example.com"},
	}))
	require.NotNil(t, store.Session())
	assert.Equal(t, "new@example.com", store.Session().Email)
}

func TestRestoreSeedsFromSnapshots(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	ctx := context.Background()

	first := NewStore(testSessionID, testDirectory(), testCalculator(), snapshots, testLogger())
	require.NoError(t, first.AddItem(ctx, shirt()))
	require.NoError(t, first.Apply(ctx, SaveShippingAddress{Address: ShippingAddress{
		FullName: "Jo Buyer", Address: "1 Main St", City: "Town", PostalCode: "12345", Country: "US",
	}}))
	require.NoError(t, first.Apply(ctx, SignIn{Session: user.Session{Email: "user@example.com", IsAdmin: false}}))

	second := NewStore(testSessionID, testDirectory(), testCalculator(), snapshots, testLogger())
	second.Restore(ctx)

	cart := second.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "nike-slim-shirt", cart.Items[0].Slug)
	require.NotNil(t, cart.ShippingAddress)
	assert.Equal(t, "Jo Buyer", cart.ShippingAddress.FullName)
	require.NotNil(t, second.Session())
	assert.Equal(t, "user@example.com", second.Session().Email)
}

func TestCartSnapshotPricing(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, shirt()))
	cart := store.Cart()
	assert.Equal(t, 120.0, cart.Pricing.ItemPrice)
	assert.Equal(t, 0.0, cart.Pricing.ShippingPrice)
	assert.Equal(t, 18.0, cart.Pricing.TaxPrice)
	assert.Equal(t, 138.0, cart.Pricing.TotalPrice)

	// Mutating the snapshot never touches store state
	cart.Items[0].Quantity = 99
	assert.Equal(t, 1, store.Cart().Items[0].Quantity)
}

func TestApplyUnknownCommand(t *testing.T) {
	store, _ := newTestStore(t)

	type rogue struct{ Command }
	err := store.Apply(context.Background(), rogue{})
	assert.Error(t, err)
}
