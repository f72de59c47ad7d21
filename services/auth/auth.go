package auth

import (
	"context"
	"errors"
	"time"

	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
)

var (
	// ErrInvalidCredentials is returned when signin fails; it never reveals
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signup hits the unique email constraint
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned by the repository for unknown emails
	ErrUserNotFound = errors.New("user not found")
)

// UserRepo defines the persistence operations for accounts
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RevocationRepo records signed-out token ids until they expire
type RevocationRepo interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthUC defines the authentication business operations
type AuthUC interface {
	SignUp(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)
	SignOut(ctx context.Context, ident *identity.Identity) error
}
