// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SessionUsecase defines the interface for session management operations.
// The session model is deliberately minimal: one active session, validated
// only by the presence of its fingerprint token.
type SessionUsecase interface {
	// CurrentUser returns the active session, or a session-invalid error when
	// none exists or the stored payload lacks a fingerprint.
	CurrentUser(ctx context.Context) (*entity.Session, error)

	// Logout deletes the active session. Idempotent; logging out twice is not
	// an error.
	Logout(ctx context.Context) error
}
