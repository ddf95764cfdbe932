// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account and session handlers.
type AccountHandler struct {
	accounts usecase.AccountUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accounts usecase.AccountUsecase, sessions usecase.SessionUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

// Register handles the account registration request. No session is opened;
// the client follows up with a login.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Account registered successfully")
}

// loginResponse pairs the user with the session token the client stores.
type loginResponse struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// Login handles the email/password login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		User:  output.User,
		Token: output.Fingerprint,
	}, "Login successful")
}

// SocialLogin signs a user in via an external identity provider, creating the
// account on first contact.
func (h *AccountHandler) SocialLogin(c echo.Context) error {
	var input *usecase.SocialLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.SocialLogin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		User:  output.User,
		Token: output.Fingerprint,
	}, "Login successful")
}

// Logout deletes the active session. Safe to call without one.
func (h *AccountHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Me returns the authenticated session's user.
func (h *AccountHandler) Me(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	return response.Success(c, http.StatusOK, session.User, "")
}
