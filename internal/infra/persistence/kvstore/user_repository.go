package kvstore

import (
	"context"
	"sync"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/kv"

	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository over the kv store.
// The mutex serializes the read-modify-write append within this process;
// cross-process writers remain last-writer-wins by design.
type userRepository struct {
	mu    sync.Mutex
	store kv.Store
	keys  Keys
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store kv.Store, keys Keys) repository.UserRepository {
	return &userRepository{store: store, keys: keys}
}

// List retrieves every stored user in insertion order.
func (repo *userRepository) List(ctx context.Context) ([]entity.User, error) {
	return readCollection[entity.User](ctx, repo.store, repo.keys.Users())
}

// FindByEmail retrieves a single user by exact, case-sensitive email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create appends a new user, enforcing the email-uniqueness invariant, and
// persists the full collection back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	users, err := repo.List(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	users = append(users, *user)

	return errors.Wrap(writeCollection(ctx, repo.store, repo.keys.Users(), users), "failed to persist user collection")
}
