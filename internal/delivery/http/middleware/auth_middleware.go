package middleware

import (
	"strings"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeySession is the echo context key the active session is stored
// under for downstream handlers.
const ContextKeySession = "session"

// AuthMiddleware authenticates requests against the single active session.
// There are no token claims to inspect: a request is authenticated when its
// bearer token equals the active session's fingerprint.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the bearer token against the active session
// fingerprint and stores the session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		session, err := m.sessions.CurrentUser(c.Request().Context())
		if err != nil || session.Fingerprint != token {
			return response.Unauthorized(c, "SESSION_INVALID", "Invalid or expired session")
		}

		c.Set(ContextKeySession, session)

		return next(c)
	}
}

// RequireRole allows only sessions whose user carries the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(ContextKeySession).(*entity.Session)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: session information missing")
			}

			if session.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

// SessionFromContext returns the session stored by Authenticate, or nil.
func SessionFromContext(c echo.Context) *entity.Session {
	session, _ := c.Get(ContextKeySession).(*entity.Session)

	return session
}
