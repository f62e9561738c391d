// internal/domain/checkout/manager_test.go
package checkout

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func newManagerTestStore(t *testing.T) *cart.Store {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	calc := pricing.NewCalculator(config.PricingConfig{
		TaxRate:               0.15,
		FlatShippingFee:       10,
		FreeShippingThreshold: 100,
		RoundDecimals:         2,
	})

	return cart.NewStore("test-session", testDirectory(), calc, storage.NewMemoryStore(), logger)
}

func TestManagerSessionIsStable(t *testing.T) {
	manager := NewManager(testDirectory(), testTokens())
	store := newManagerTestStore(t)

	first := manager.Session("test-session", store)
	second := manager.Session("test-session", store)
	assert.Same(t, first, second)
}

func TestManagerResetAllowsRepeatOrders(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(testDirectory(), testTokens())
	store := newManagerTestStore(t)

	pipeline := manager.Session("test-session", store)
	addShirt(t, store)
	signIn(t, pipeline)
	submitShipping(t, pipeline)
	_, err := pipeline.SubmitPayment(ctx, "PayPal")
	require.NoError(t, err)

	next, err := pipeline.SubmitPlaceOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, StepCompleted, next)

	// The finished pipeline stays one-shot until it is discarded
	_, err = pipeline.SubmitPlaceOrder(ctx)
	require.ErrorIs(t, err, ErrOrderCompleted)

	manager.Reset("test-session")

	// A fresh cycle for the same session can order again; the session,
	// address and payment method persist on the cart store
	fresh := manager.Session("test-session", store)
	assert.NotSame(t, pipeline, fresh)
	assert.False(t, fresh.Completed())

	addShirt(t, store)
	next, err = fresh.SubmitPlaceOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepCompleted, next)
}
