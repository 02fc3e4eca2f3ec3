package middleware

import (
	"goalazo/config"
	deliverycontext "goalazo/internal/delivery/context"
	"goalazo/internal/delivery/http/response"
	"goalazo/internal/domain/entity"
	"goalazo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the access token carried in a configurable request
// header and exposes the token's identity to downstream handlers.
type AuthMiddleware struct {
	userUc usecase.UserUsecase
	header string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUc usecase.UserUsecase, cfg *config.Config) *AuthMiddleware {
	header := "x-access-token"
	if cfg != nil && cfg.Request != nil && cfg.Request.AccessTokenHeader != "" {
		header = cfg.Request.AccessTokenHeader
	}

	return &AuthMiddleware{userUc: userUc, header: header}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.Request().Header.Get(m.header)
		if tokenString == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "access token header is missing")
		}

		authUser, err := m.userUc.CheckAuthentication(c.Request().Context(), tokenString)
		if err != nil {
			// A bad or expired token is a 401; 403 is reserved for failed
			// credential logins.
			return response.Unauthorized(c, "TOKEN_INVALID", "invalid or expired access token")
		}

		c.Set(string(deliverycontext.KeyAuthUser), authUser)

		return next(c)
	}
}

// GetAuthUser extracts the authenticated user set by Authenticate.
// Returns nil when the middleware did not run on this route.
func GetAuthUser(c echo.Context) *entity.AuthenticatedUser {
	if authUser, ok := c.Get(string(deliverycontext.KeyAuthUser)).(*entity.AuthenticatedUser); ok {
		return authUser
	}

	return nil
}
