package kvstore

import (
	"context"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/kv"

	"github.com/pkg/errors"
)

// orderRepository implements repository.OrderRepository over the kv store.
// Orders are append-only; status never changes after creation.
type orderRepository struct {
	mu    sync.Mutex
	store kv.Store
	keys  Keys
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store kv.Store, keys Keys) repository.OrderRepository {
	return &orderRepository{store: store, keys: keys}
}

// Save assigns a time-derived "ORD-" id, appends the order and persists the
// full collection back.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	orders, err := readCollection[entity.Order](ctx, repo.store, repo.keys.Orders())
	if err != nil {
		return nil, err
	}

	stored := *order
	stored.ID = nextID("ORD", orderIDs(orders))
	orders = append(orders, stored)

	if err := writeCollection(ctx, repo.store, repo.keys.Orders(), orders); err != nil {
		return nil, errors.Wrap(err, "failed to persist order collection")
	}

	return &stored, nil
}

// FindByID retrieves a single order by id.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := readCollection[entity.Order](ctx, repo.store, repo.keys.Orders())
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// ListByCustomer filters orders by exact customerName match in insertion order.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerName string) ([]entity.Order, error) {
	orders, err := readCollection[entity.Order](ctx, repo.store, repo.keys.Orders())
	if err != nil {
		return nil, err
	}

	var matched []entity.Order
	for i := range orders {
		if orders[i].CustomerName == customerName {
			matched = append(matched, orders[i])
		}
	}

	return matched, nil
}

func orderIDs(orders []entity.Order) map[string]struct{} {
	ids := make(map[string]struct{}, len(orders))
	for i := range orders {
		ids[orders[i].ID] = struct{}{}
	}

	return ids
}
