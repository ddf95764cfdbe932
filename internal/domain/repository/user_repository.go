// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when creating a user whose email already
// exists in the collection. Email uniqueness is the collection's invariant.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// List retrieves every stored user in insertion order.
	List(ctx context.Context) ([]entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// Matching is exact and case-sensitive, as stored.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create appends a new user and persists the full collection back.
	// Returns ErrDuplicateEmail if the email is already present.
	Create(ctx context.Context, user *entity.User) error
}
