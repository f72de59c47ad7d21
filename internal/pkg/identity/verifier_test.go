package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	jwtpkg "github.com/quangnguyen9723/finance-manager/internal/pkg/jwt"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func testConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key",
		Expiration: 60,
		Issuer:     "finance-manager-test",
	}
}

func TestVerify_ValidToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New().String()

	token, _, err := jwtpkg.GenerateToken(userID, "alice@example.com", cfg)
	assert.NoError(t, err)

	mockStore := new(MockRevocationStore)
	mockStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	v := NewJWTVerifier(cfg, mockStore)
	ident, err := v.Verify(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, userID, ident.UserID)
	assert.Equal(t, "alice@example.com", ident.Email)
	assert.NotEmpty(t, ident.TokenID)
	assert.False(t, ident.ExpiresAt.IsZero())
}

func TestVerify_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := jwtpkg.GenerateToken(uuid.New().String(), "alice@example.com", cfg)
	assert.NoError(t, err)

	other := cfg
	other.Secret = "a-different-secret"
	v := NewJWTVerifier(other, nil)

	_, err = v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RevokedToken(t *testing.T) {
	cfg := testConfig()

	token, _, err := jwtpkg.GenerateToken(uuid.New().String(), "alice@example.com", cfg)
	assert.NoError(t, err)

	mockStore := new(MockRevocationStore)
	mockStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

	v := NewJWTVerifier(cfg, mockStore)
	_, err = v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestVerify_NonUUIDSubject(t *testing.T) {
	cfg := testConfig()

	token, _, err := jwtpkg.GenerateToken("not-a-uuid", "alice@example.com", cfg)
	assert.NoError(t, err)

	v := NewJWTVerifier(cfg, nil)
	_, err = v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_NilStoreSkipsRevocationCheck(t *testing.T) {
	cfg := testConfig()

	token, _, err := jwtpkg.GenerateToken(uuid.New().String(), "alice@example.com", cfg)
	assert.NoError(t, err)

	v := NewJWTVerifier(cfg, nil)
	ident, err := v.Verify(context.Background(), token)

	assert.NoError(t, err)
	assert.NotNil(t, ident)
}

func TestGlobalVerifier_FirstInitWins(t *testing.T) {
	Reset()
	defer Reset()

	first := NewJWTVerifier(testConfig(), nil)
	second := NewJWTVerifier(testConfig(), nil)

	Init(first)
	Init(second)

	assert.Same(t, first, Default())
}

func TestGlobalVerifier_DefaultNilBeforeInit(t *testing.T) {
	Reset()
	defer Reset()

	assert.Nil(t, Default())
}
