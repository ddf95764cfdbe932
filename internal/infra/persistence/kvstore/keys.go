// Package kvstore contains the concrete implementation of the persistence
// layer on top of the key-value store adapter. Each collection is one JSON
// blob under a namespaced key; writes are whole-collection read-modify-write,
// exactly like the storage layout this design was ported from.
package kvstore

import (
	"context"
	"encoding/json"

	"bazaar/internal/infra/kv"

	"github.com/pkg/errors"
)

// DefaultNamespace prefixes every collection key when no prefix is configured.
const DefaultNamespace = "bazaar"

// Keys composes the namespaced key for each persisted collection.
type Keys struct {
	prefix string
}

// NewKeys builds a key set under the given namespace prefix.
func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultNamespace
	}

	return Keys{prefix: prefix}
}

// Users is the key of the user collection blob.
func (k Keys) Users() string { return k.prefix + "_users" }

// Products is the key of the seller-added product collection blob.
// The base catalog is never persisted.
func (k Keys) Products() string { return k.prefix + "_products" }

// Orders is the key of the order collection blob.
func (k Keys) Orders() string { return k.prefix + "_orders" }

// Session is the key of the single active session record.
func (k Keys) Session() string { return k.prefix + "_session" }

// readCollection decodes the JSON array stored under key. An absent key or a
// blob that fails to parse both yield the empty collection; a corrupt blob is
// not worth crashing a demo store over, and the next write replaces it.
func readCollection[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read collection %q", key)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, nil
	}

	return items, nil
}

// writeCollection encodes items and persists the full collection back.
func writeCollection[T any](ctx context.Context, store kv.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "failed to encode collection %q", key)
	}

	return errors.Wrapf(store.Set(ctx, key, string(raw)), "failed to write collection %q", key)
}
