package kvstore

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeys() Keys {
	return NewKeys("test")
}

func TestUserRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(kv.NewMemoryStore(), newTestKeys())

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "a@example.com", Name: "A"}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u2", Email: "b@example.com", Name: "B"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID, "insertion order is preserved")
	assert.Equal(t, "u2", users[1].ID)
}

func TestUserRepository_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(kv.NewMemoryStore(), newTestKeys())

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "dup@example.com"}))

	err := repo.Create(ctx, &entity.User{ID: "u2", Email: "dup@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "rejected create must not touch the collection")
}

func TestUserRepository_FindByEmailIsExact(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(kv.NewMemoryStore(), newTestKeys())

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "Case@Example.com"}))

	found, err := repo.FindByEmail(ctx, "Case@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.ID)

	_, err = repo.FindByEmail(ctx, "case@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound, "matching is case-sensitive")
}

func TestUserRepository_CorruptCollectionReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	keys := newTestKeys()
	require.NoError(t, store.Set(ctx, keys.Users(), "{broken"))

	repo := NewUserRepository(store, keys)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	// The next write replaces the corrupt blob.
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "fresh@example.com"}))

	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
