package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/middleware"
)

// RegisterRoutes registers the authentication routes. Signout requires a
// verified identity so the presented token can be revoked.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, verifier identity.Verifier) {
	g := e.Group("/auth")

	g.POST("/signup", h.SignUp)
	g.POST("/signin", h.SignIn)
	g.POST("/signout", h.SignOut, middleware.AuthMiddleware(verifier))
}
