package kvstore

import (
	"context"
	"strings"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBaseCatalog() []entity.Product {
	return []entity.Product{
		{ID: "p-special-1", Name: "Flagship", Price: 999},
		{ID: "gen-1", Name: "Generated One", Price: 100},
		{ID: "gen-2", Name: "Generated Two", Price: 200},
	}
}

func TestCatalogRepository_ListBaseFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(kv.NewMemoryStore(), newTestKeys(), testBaseCatalog())

	added, err := repo.Add(ctx, &entity.Product{Name: "Seller Item", Price: 50})
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, "p-special-1", products[0].ID, "base catalog always comes first")
	assert.Equal(t, added.ID, products[3].ID)
}

func TestCatalogRepository_AddAssignsNamespacedID(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(kv.NewMemoryStore(), newTestKeys(), testBaseCatalog())

	first, err := repo.Add(ctx, &entity.Product{Name: "One"})
	require.NoError(t, err)
	second, err := repo.Add(ctx, &entity.Product{Name: "Two"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "db-"))
	assert.True(t, strings.HasPrefix(second.ID, "db-"))
	assert.NotEqual(t, first.ID, second.ID, "ids stay unique even within a millisecond")
}

func TestCatalogRepository_BaseIsNeverPersisted(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	keys := newTestKeys()
	repo := NewCatalogRepository(store, keys, testBaseCatalog())

	_, err := repo.Add(ctx, &entity.Product{Name: "Persisted"})
	require.NoError(t, err)

	raw, ok, err := store.Get(ctx, keys.Products())
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, "gen-1", "only the added collection is written back")
	assert.Contains(t, raw, "Persisted")
}

func TestCatalogRepository_FindByIDAcrossArenas(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository(kv.NewMemoryStore(), newTestKeys(), testBaseCatalog())

	added, err := repo.Add(ctx, &entity.Product{Name: "Added"})
	require.NoError(t, err)

	base, err := repo.FindByID(ctx, "gen-2")
	require.NoError(t, err)
	assert.Equal(t, "Generated Two", base.Name)

	stored, err := repo.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Added", stored.Name)

	_, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCatalogRepository_CorruptAddedCollection(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	keys := newTestKeys()
	require.NoError(t, store.Set(ctx, keys.Products(), "[broken"))

	repo := NewCatalogRepository(store, keys, testBaseCatalog())

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3, "corrupt added collection degrades to base only")
}
