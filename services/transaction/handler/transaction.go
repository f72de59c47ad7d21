package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/logger"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
	"github.com/quangnguyen9723/finance-manager/internal/utils"
	"github.com/quangnguyen9723/finance-manager/services/transaction"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transaction.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transaction.TransactionUC) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

type createTransactionResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		logger.ErrorLog("Create failed: no verified owner on request", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	id, err := h.transactionUC.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			return utils.BadRequestResponse(c, validationErr.Message)
		}
		logger.ErrorLog("Create failed", logger.Err(err), logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	return c.JSON(http.StatusCreated, createTransactionResponse{
		Message:       "Transaction created",
		TransactionID: id,
	})
}

// ListTransactions handles GET /transactions
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		logger.ErrorLog("Fetch failed: no verified owner on request", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch transactions")
	}

	filter, err := parseFilter(c, true)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	transactions, err := h.transactionUC.ListTransactions(c.Request().Context(), userID, filter)
	if err != nil {
		logger.ErrorLog("Fetch failed", logger.Err(err), logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Failed to fetch transactions")
	}

	return c.JSON(http.StatusOK, transactions)
}

// GetSummary handles GET /transactions/summary
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		logger.ErrorLog("Summary fetch failed: no verified owner on request", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch transaction summary")
	}

	filter, err := parseFilter(c, false)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	summary, err := h.transactionUC.GetSummary(c.Request().Context(), userID, filter)
	if err != nil {
		logger.ErrorLog("Summary fetch failed", logger.Err(err), logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Failed to fetch transaction summary")
	}

	return c.JSON(http.StatusOK, summary)
}

// UpdateTransaction handles PUT /transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		logger.ErrorLog("Update failed: no verified owner on request", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update transaction")
	}

	transactionID := c.Param("id")

	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err = h.transactionUC.UpdateTransaction(c.Request().Context(), userID, transactionID, &req)
	if err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return utils.BadRequestResponse(c, validationErr.Message)
		case errors.Is(err, transaction.ErrNotFound):
			return utils.NotFoundResponse(c, "Transaction not found")
		default:
			logger.ErrorLog("Update failed", logger.Err(err), logger.String("user_id", userID))
			return utils.InternalServerErrorResponse(c, "Failed to update transaction")
		}
	}

	return utils.SendMessage(c, http.StatusOK, "Transaction updated successfully")
}

// DeleteTransaction handles DELETE /transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		logger.ErrorLog("Delete failed: no verified owner on request", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to delete transaction")
	}

	transactionID := c.Param("id")

	err = h.transactionUC.DeleteTransaction(c.Request().Context(), userID, transactionID)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.ErrorLog("Delete failed", logger.Err(err), logger.String("user_id", userID))
		return utils.InternalServerErrorResponse(c, "Failed to delete transaction")
	}

	return utils.SendMessage(c, http.StatusOK, "Transaction deleted successfully")
}

// parseFilter reads the optional filter query parameters. The summary
// endpoint only accepts the date range; list accepts the full set.
func parseFilter(c echo.Context, full bool) (models.TransactionFilter, error) {
	var filter models.TransactionFilter

	if v := c.QueryParam("start_date"); v != "" {
		d, err := time.Parse(models.DateLayout, v)
		if err != nil {
			return filter, errors.New("Invalid start_date, expected YYYY-MM-DD")
		}
		filter.StartDate = &d
	}

	if v := c.QueryParam("end_date"); v != "" {
		d, err := time.Parse(models.DateLayout, v)
		if err != nil {
			return filter, errors.New("Invalid end_date, expected YYYY-MM-DD")
		}
		filter.EndDate = &d
	}

	if !full {
		return filter, nil
	}

	if v := c.QueryParam("category"); v != "" {
		category, ok := models.ParseCategory(v)
		if !ok {
			return filter, errors.New("Unknown category")
		}
		filter.Category = &category
	}

	if v := c.QueryParam("is_expense"); v != "" {
		isExpense, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("Invalid is_expense, expected true or false")
		}
		filter.IsExpense = &isExpense
	}

	return filter, nil
}
