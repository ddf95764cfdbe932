package kvstore

import (
	"context"
	"encoding/json"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/kv"

	"github.com/pkg/errors"
)

// sessionRepository implements repository.SessionRepository over the kv
// store. The session is a single JSON object, not a collection.
type sessionRepository struct {
	store kv.Store
	keys  Keys
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store kv.Store, keys Keys) repository.SessionRepository {
	return &sessionRepository{store: store, keys: keys}
}

// Current returns the active session. An absent record, an unparseable
// payload and a payload without a fingerprint are all reported as ErrNoSession:
// fingerprint presence is the session's only integrity check.
func (repo *sessionRepository) Current(ctx context.Context) (*entity.Session, error) {
	raw, ok, err := repo.store.Get(ctx, repo.keys.Session())
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session record")
	}
	if !ok {
		return nil, repository.ErrNoSession
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, repository.ErrNoSession
	}
	if !session.Valid() {
		return nil, repository.ErrNoSession
	}

	return &session, nil
}

// Save overwrites the active session record.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session record")
	}

	return errors.Wrap(repo.store.Set(ctx, repo.keys.Session(), string(raw)), "failed to write session record")
}

// Clear deletes the session record unconditionally.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	return errors.Wrap(repo.store.Delete(ctx, repo.keys.Session()), "failed to delete session record")
}
