package kvstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/kv"

	"github.com/pkg/errors"
)

// catalogRepository merges the immutable in-memory base catalog with the
// persisted seller-added collection. The base set is held as generated and
// never written back; added products use the "db-" id namespace so the two
// arenas can never collide.
type catalogRepository struct {
	mu    sync.Mutex
	store kv.Store
	keys  Keys
	base  []entity.Product
}

// NewCatalogRepository is the constructor for catalogRepository. The base
// catalog is generated once by the caller and treated as read-only here.
func NewCatalogRepository(store kv.Store, keys Keys, base []entity.Product) repository.CatalogRepository {
	return &catalogRepository{store: store, keys: keys, base: base}
}

// List returns base catalog ++ added products, base first.
func (repo *catalogRepository) List(ctx context.Context) ([]entity.Product, error) {
	added, err := readCollection[entity.Product](ctx, repo.store, repo.keys.Products())
	if err != nil {
		return nil, err
	}

	merged := make([]entity.Product, 0, len(repo.base)+len(added))
	merged = append(merged, repo.base...)
	merged = append(merged, added...)

	return merged, nil
}

// FindByID looks a product up across both arenas.
func (repo *catalogRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Add assigns a fresh "db-" id, appends the product to the persisted
// collection and returns the stored copy.
func (repo *catalogRepository) Add(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	added, err := readCollection[entity.Product](ctx, repo.store, repo.keys.Products())
	if err != nil {
		return nil, err
	}

	stored := *product
	stored.ID = nextID("db", addedIDs(added))
	added = append(added, stored)

	if err := writeCollection(ctx, repo.store, repo.keys.Products(), added); err != nil {
		return nil, errors.Wrap(err, "failed to persist product collection")
	}

	return &stored, nil
}

func addedIDs(products []entity.Product) map[string]struct{} {
	ids := make(map[string]struct{}, len(products))
	for i := range products {
		ids[products[i].ID] = struct{}{}
	}

	return ids
}

// nextID derives a time-based id under the given prefix, bumping the
// millisecond component until it clears any id already in the collection.
// Collisions only happen for writes landing in the same millisecond.
func nextID(prefix string, taken map[string]struct{}) string {
	ms := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("%s-%d", prefix, ms)
		if _, exists := taken[id]; !exists {
			return id
		}
		ms++
	}
}
