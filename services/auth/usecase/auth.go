package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	jwtpkg "github.com/quangnguyen9723/finance-manager/internal/pkg/jwt"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
	"github.com/quangnguyen9723/finance-manager/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthUC implements the auth.AuthUC interface
type AuthUC struct {
	jwtConfig   models.JWTConfig
	userRepo    auth.UserRepo
	revocations auth.RevocationRepo
}

// NewAuthUC creates a new auth use case
func NewAuthUC(jwtConfig models.JWTConfig, userRepo auth.UserRepo, revocations auth.RevocationRepo) *AuthUC {
	return &AuthUC{
		jwtConfig:   jwtConfig,
		userRepo:    userRepo,
		revocations: revocations,
	}
}

// SignUp registers a new account and issues a token for it
func (u *AuthUC) SignUp(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	email, password, err := validateCredentials(req)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return u.issueToken(user)
}

// SignIn verifies the credentials and issues a token. Unknown emails and
// wrong passwords are reported identically.
func (u *AuthUC) SignIn(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	email, password, err := validateCredentials(req)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err == auth.ErrUserNotFound {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return u.issueToken(user)
}

// SignOut revokes the presented token for its remaining lifetime
func (u *AuthUC) SignOut(ctx context.Context, ident *identity.Identity) error {
	if ident == nil || ident.TokenID == "" {
		return fmt.Errorf("token carries no id to revoke")
	}

	ttl := time.Until(ident.ExpiresAt)
	if ttl <= 0 {
		// Already expired; nothing left to revoke.
		return nil
	}

	return u.revocations.Revoke(ctx, ident.TokenID, ttl)
}

func (u *AuthUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, _, err := jwtpkg.GenerateToken(user.ID, user.Email, u.jwtConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UID:   user.ID,
		Email: user.Email,
		Token: token,
	}, nil
}

func validateCredentials(req *models.AuthRequest) (string, string, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return "", "", models.NewValidationError("Email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	return email, req.Password, nil
}
