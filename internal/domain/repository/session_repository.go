// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrNoSession is returned when no valid session record exists. A stored
// payload missing its fingerprint is reported the same way - it is the
// session's only integrity check.
var ErrNoSession = errors.New("no active session")

// SessionRepository persists the single active session record. There is at
// most one session per store instance; saving overwrites any previous one.
type SessionRepository interface {
	// Current returns the active session, or ErrNoSession when the record is
	// absent or fails the fingerprint integrity check.
	Current(ctx context.Context) (*entity.Session, error)

	// Save overwrites the active session record.
	Save(ctx context.Context, session *entity.Session) error

	// Clear deletes the session record unconditionally. Idempotent.
	Clear(ctx context.Context) error
}
