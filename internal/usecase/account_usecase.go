// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=CUSTOMER SELLER ADMIN"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SocialLoginInput defines the data received from a social identity provider.
type SocialLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Provider string `json:"provider" validate:"required,oneof=google facebook"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user. Registration never opens a
// session; the client logs in explicitly afterwards.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the logged-in user plus the session fingerprint the
// client presents as its bearer token.
type LoginOutput struct {
	User        *entity.User
	Fingerprint string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	SocialLogin(ctx context.Context, input *SocialLoginInput) (*LoginOutput, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
}
