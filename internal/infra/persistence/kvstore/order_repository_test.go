package kvstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(customer string) *entity.Order {
	return &entity.Order{
		CustomerName: customer,
		Products: []entity.OrderLine{
			{ProductID: "gen-1", Quantity: 2, Price: 100},
		},
		TotalAmount:   200,
		Status:        entity.OrderPending,
		CreatedAt:     time.Now(),
		PaymentMethod: entity.PaymentCOD,
	}
}

func TestOrderRepository_SaveAssignsPrefixedID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(kv.NewMemoryStore(), newTestKeys())

	first, err := repo.Save(ctx, testOrder("Alice"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, testOrder("Alice"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "ORD-"))
	assert.True(t, strings.HasPrefix(second.ID, "ORD-"))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestOrderRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(kv.NewMemoryStore(), newTestKeys())

	stored, err := repo.Save(ctx, testOrder("Alice"))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)
	assert.Equal(t, float64(200), found.TotalAmount)

	_, err = repo.FindByID(ctx, "ORD-0")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(kv.NewMemoryStore(), newTestKeys())

	_, err := repo.Save(ctx, testOrder("Alice"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, testOrder("Bob"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, testOrder("Alice"))
	require.NoError(t, err)

	mine, err := repo.ListByCustomer(ctx, "Alice")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := repo.ListByCustomer(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, none, "customer matching is exact")
}
