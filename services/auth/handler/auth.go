package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/identity"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/logger"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/middleware"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
	"github.com/quangnguyen9723/finance-manager/internal/utils"
	"github.com/quangnguyen9723/finance-manager/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.AuthRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.BadRequestResponse(c, validationErr.Message)
		case errors.Is(err, auth.ErrEmailTaken):
			return utils.BadRequestResponse(c, "Email already registered")
		default:
			logger.ErrorLog("Error creating user", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to create user")
		}
	}

	return c.JSON(http.StatusCreated, response)
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.AuthRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.authUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.BadRequestResponse(c, validationErr.Message)
		case errors.Is(err, auth.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		default:
			logger.ErrorLog("Error signing in", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to sign in")
		}
	}

	return c.JSON(http.StatusOK, response)
}

// SignOut handles POST /auth/signout
func (h *AuthHandler) SignOut(c echo.Context) error {
	ident, ok := c.Get(middleware.ContextKeyIdentity).(*identity.Identity)
	if !ok {
		logger.ErrorLog("Error signing out: no verified identity on request")
		return utils.InternalServerErrorResponse(c, "Error signing out")
	}

	if err := h.authUC.SignOut(c.Request().Context(), ident); err != nil {
		logger.ErrorLog("Error signing out", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Error signing out")
	}

	return utils.SendMessage(c, http.StatusOK, "Successfully signed out")
}
