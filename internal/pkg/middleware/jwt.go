package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	"github.com/quangnguyen9723/finance-manager/internal/utils"
)

// Context keys populated by AuthMiddleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyIdentity = "identity"
)

// AuthMiddleware creates a middleware that verifies the bearer credential via
// the identity verifier and stows the verified subject in the request context.
func AuthMiddleware(verifier identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Unauthorized: No token provided")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Unauthorized: Invalid authorization format")
			}

			ident, err := verifier.Verify(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, identity.ErrRevokedToken) {
					return utils.UnauthorizedResponse(c, "Unauthorized: Token has been revoked")
				}
				return utils.UnauthorizedResponse(c, "Unauthorized: Invalid token")
			}

			// Set the verified subject in the context
			c.Set(ContextKeyUserID, ident.UserID)
			c.Set(ContextKeyIdentity, ident)

			return next(c)
		}
	}
}
