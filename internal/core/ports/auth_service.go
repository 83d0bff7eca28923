package ports

import (
	"context"
	"time"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
)

// RegisterInput carries the self-service registration form.
// Role may be empty; anything other than "student" is rejected.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	RoomNumber string
	Role       string
}

// AuthResult is returned after a successful register or login.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService covers registration, login and session resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Authenticator
}

// Authenticator resolves a session credential to the user it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// TokenIssuer mints and verifies stateless session credentials.
type TokenIssuer interface {
	Issue(userID string) (token string, expiresAt time.Time, err error)
	Verify(token string) (userID string, err error)
}
