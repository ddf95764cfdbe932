// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	fingerprint service.FingerprintService
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Fingerprint service.FingerprintService
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		fingerprint: params.Fingerprint,
		logger:      params.Logger,
	}
}

// Register creates a local account. It deliberately does NOT open a session;
// only login and social login do that.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	role := entity.Role(input.Role)
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		ID:               uuid.NewString(),
		Email:            util.Sanitize(input.Email),
		PasswordHash:     passwordHash,
		Name:             util.Sanitize(input.Name),
		Role:             role,
		CreatedAt:        time.Now(),
		Provider:         entity.ProviderLocal,
		TwoFactorEnabled: false,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.logger.Warn("Registration rejected, email already registered", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailTaken.WrapMessage("registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.logger.Debug("Registration completed", slog.String("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login authenticates an email/password pair. Success requires both the email
// to match a stored user and the hashed password to match the stored hash; a
// fresh fingerprint is issued and the session overwritten on every success.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Social-login accounts have no password hash and can never pass here.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	return srv.openSession(ctx, user)
}

// SocialLogin signs a user in through an external identity provider,
// creating the account on first contact. New or existing, the user gets a
// fresh fingerprint and the session record is overwritten.
func (srv *accountService) SocialLogin(ctx context.Context, input *usecase.SocialLoginInput) (*usecase.LoginOutput, error) {
	provider := entity.AuthProvider(input.Provider)
	if !provider.IsSocial() {
		return nil, domainerrors.ErrInvalidProvider.WrapMessage("social login failed")
	}

	srv.logger.Debug("Starting social login", slog.String("email", input.Email), slog.String("provider", input.Provider))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load user for social login")
		}

		user = &entity.User{
			ID:               uuid.NewString(),
			Email:            input.Email,
			Name:             input.Name,
			Role:             entity.RoleCustomer,
			CreatedAt:        time.Now(),
			Provider:         provider,
			Avatar:           input.Avatar,
			TwoFactorEnabled: false,
		}

		if err := srv.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user during social login")
		}
		srv.logger.Info("Created account from social login", slog.String("userID", user.ID), slog.String("provider", input.Provider))
	}

	return srv.openSession(ctx, user)
}

// ListUsers returns every stored user in insertion order.
func (srv *accountService) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// openSession issues a fresh fingerprint and overwrites the single session
// record with a denormalized copy of the user. The fingerprint is never
// written back into the user collection.
func (srv *accountService) openSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	session := &entity.Session{
		User:        *user,
		Fingerprint: srv.fingerprint.New(),
	}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.logger.Debug("Session opened", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		User:        user,
		Fingerprint: session.Fingerprint,
	}, nil
}
