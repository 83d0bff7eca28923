package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

// Context keys set by Auth.
const (
	UserKey = "user"
	RoleKey = "role"
)

// Auth resolves the session credential into a user and injects it into the
// context. The token is read from the session cookie, falling back to an
// Authorization: Bearer header for non-browser clients.
func Auth(authenticator ports.Authenticator, cookieName string) echo.MiddlewareFunc {
	if cookieName == "" {
		cookieName = "token"
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c, cookieName)
			if token == "" {
				return domain.ErrUnauthenticated
			}

			user, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return domain.ErrUnauthenticated
				}
				return err
			}

			c.Set(UserKey, user)
			c.Set(RoleKey, string(user.Role))

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
