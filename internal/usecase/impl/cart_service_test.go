package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/kv"
	"bazaar/internal/infra/persistence/kvstore"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(base []entity.Product) usecase.CartUsecase {
	repo := kvstore.NewCatalogRepository(kv.NewMemoryStore(), kvstore.NewKeys("test"), base)

	return NewCartService(CartServiceParams{
		CatalogRepo: repo,
		Logger:      testLogger(),
	})
}

func cartBase() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "One", Price: 100},
		{ID: "p2", Name: "Two", Price: 250},
	}
}

func TestCartService_AddMergesLines(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(cartBase())

	_, err := svc.Add(ctx, "fp", "p1", 1)
	require.NoError(t, err)
	cart, err := svc.Add(ctx, "fp", "p1", 2)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, 300.0, cart.Subtotal())
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(cartBase())

	_, err := svc.Add(ctx, "fp", "ghost", 1)
	require.Error(t, err)
}

func TestCartService_AddClampsQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(cartBase())

	cart, err := svc.Add(ctx, "fp", "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity, "quantity never drops below one")
}

func TestCartService_AdjustClampsAtOne(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(cartBase())

	_, err := svc.Add(ctx, "fp", "p1", 2)
	require.NoError(t, err)

	cart, err := svc.Adjust(ctx, "fp", "p1", -5)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity, "decrement clamps, it never removes the line")

	cart, err = svc.Adjust(ctx, "fp", "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestCartService_AdjustMissingLine(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(cartBase())

	_, err := svc.Adjust(ctx, "fp", "p1", 1)
	require.Error(t, err)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(cartBase())

	_, err := svc.Add(ctx, "fp", "p1", 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "fp", "p2", 1)
	require.NoError(t, err)

	cart, err := svc.Remove(ctx, "fp", "p1")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].Product.ID)

	// Removing an absent line is a no-op.
	cart, err = svc.Remove(ctx, "fp", "p1")
	require.NoError(t, err)
	assert.Len(t, cart, 1)

	require.NoError(t, svc.Clear(ctx, "fp"))

	cart, err = svc.Get(ctx, "fp")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newCartService(cartBase())

	_, err := svc.Add(ctx, "fp-a", "p1", 1)
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "fp-b")
	require.NoError(t, err)
	assert.Empty(t, cart, "carts are keyed by fingerprint")
}
