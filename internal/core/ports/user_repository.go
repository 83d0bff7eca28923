package ports

import (
	"context"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Upsert replaces the user with the same email, or inserts it when absent.
	// The existing ID is preserved.
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
}
