package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/middleware"
)

// RegisterRoutes registers the transaction API routes. Every route requires a
// verified identity.
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo, verifier identity.Verifier) {
	g := e.Group("/transactions", middleware.AuthMiddleware(verifier))

	g.POST("", h.CreateTransaction)
	g.GET("", h.ListTransactions)
	g.GET("/summary", h.GetSummary)
	g.PUT("/:id", h.UpdateTransaction)
	g.DELETE("/:id", h.DeleteTransaction)
}
