package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookie describes how the session credential travels to the browser.
// The cookie is HttpOnly so page scripts cannot read it.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) name() string {
	if s.Name == "" {
		return "token"
	}
	return s.Name
}

// set attaches token to the response, expiring with the token itself.
func (s SessionCookie) set(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     s.name(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clear overwrites the cookie with an expired empty value. The token itself
// stays valid until it expires; there is no server-side revocation.
func (s SessionCookie) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.name(),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
