package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	ident *identity.Identity
	err   error
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (*identity.Identity, error) {
	return s.ident, s.err
}

func runAuthMiddleware(t *testing.T, verifier identity.Verifier, authHeader string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := AuthMiddleware(verifier)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, handler(c))
	return c, rec, nextCalled
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New().String()
	verifier := &stubVerifier{ident: &identity.Identity{
		UserID:  userID,
		Email:   "alice@example.com",
		TokenID: uuid.New().String(),
	}}

	c, rec, nextCalled := runAuthMiddleware(t, verifier, "Bearer some-valid-token")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, verifier.ident, c.Get(ContextKeyIdentity))
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	_, rec, nextCalled := runAuthMiddleware(t, &stubVerifier{}, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized: No token provided", response["error"])
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{"missing scheme", "some-token"},
		{"wrong scheme", "Basic some-token"},
		{"trailing parts", "Bearer a b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, rec, nextCalled := runAuthMiddleware(t, &stubVerifier{}, tc.header)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Unauthorized: Invalid authorization format", response["error"])
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: identity.ErrInvalidToken}

	_, rec, nextCalled := runAuthMiddleware(t, verifier, "Bearer bad-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized: Invalid token", response["error"])
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	verifier := &stubVerifier{err: identity.ErrRevokedToken}

	_, rec, nextCalled := runAuthMiddleware(t, verifier, "Bearer signed-out-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized: Token has been revoked", response["error"])
}
