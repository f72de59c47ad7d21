package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jwtpkg "github.com/quangnguyen9723/finance-manager/internal/pkg/jwt"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
)

var (
	// ErrInvalidToken indicates the credential failed verification
	ErrInvalidToken = errors.New("invalid token")
	// ErrRevokedToken indicates the credential was signed out
	ErrRevokedToken = errors.New("token has been revoked")
)

// Identity is the verified subject of a request
type Identity struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// Verifier resolves a bearer credential to a verified identity
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// RevocationStore answers whether a token id has been signed out
type RevocationStore interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type jwtVerifier struct {
	cfg     models.JWTConfig
	revoked RevocationStore
}

// NewJWTVerifier creates a verifier backed by HS256 tokens and an optional
// revocation store. A nil store disables the sign-out check.
func NewJWTVerifier(cfg models.JWTConfig, revoked RevocationStore) Verifier {
	return &jwtVerifier{cfg: cfg, revoked: revoked}
}

// Verify validates the token signature and expiry, then checks the
// revocation denylist before admitting the identity.
func (v *jwtVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	claims, err := jwtpkg.ValidateToken(token, v.cfg.Secret)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := (*claims)["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidToken)
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("%w: user_id is not a valid UUID", ErrInvalidToken)
	}

	ident := &Identity{UserID: userID.String()}

	if email, ok := (*claims)["email"].(string); ok {
		ident.Email = email
	}
	if jti, ok := (*claims)["jti"].(string); ok {
		ident.TokenID = jti
	}
	if exp, ok := (*claims)["exp"].(float64); ok {
		ident.ExpiresAt = time.Unix(int64(exp), 0)
	}

	if v.revoked != nil && ident.TokenID != "" {
		revoked, err := v.revoked.IsRevoked(ctx, ident.TokenID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			return nil, ErrRevokedToken
		}
	}

	return ident, nil
}
