package impl

import (
	"context"
	"log/slog"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
	}
}

// CurrentUser returns the active session. Absent records and records that
// fail the fingerprint check map to the same session-invalid error.
func (srv *sessionService) CurrentUser(ctx context.Context) (*entity.Session, error) {
	session, err := srv.sessionRepo.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("no active session")
		}

		return nil, errors.Wrap(err, "failed to load current session")
	}

	return session, nil
}

// Logout deletes the active session record. Calling it without a session is
// not an error.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.logger.Debug("Session cleared")

	return nil
}
