package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mindslate/hostel-complaints/internal/api/middleware"
	"github.com/mindslate/hostel-complaints/internal/core/domain"
)

// ctxUser returns the user the Auth middleware attached to the request.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil || user.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
