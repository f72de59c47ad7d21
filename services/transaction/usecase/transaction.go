package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
	"github.com/quangnguyen9723/finance-manager/services/transaction"
)

// TransactionUC implements the transaction.TransactionUC interface
type TransactionUC struct {
	repo transaction.TransactionRepo
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(repo transaction.TransactionRepo) *TransactionUC {
	return &TransactionUC{repo: repo}
}

// CreateTransaction validates the request, assigns identity and ownership,
// and persists the record. Returns the new transaction id.
func (u *TransactionUC) CreateTransaction(ctx context.Context, ownerID string, req *models.TransactionRequest) (string, error) {
	if ownerID == "" {
		// A missing owner means a route bypassed authentication; this is a
		// broken integration, not user input.
		return "", fmt.Errorf("owner id missing from request context")
	}

	tx, err := transactionFromRequest(req)
	if err != nil {
		return "", err
	}

	tx.ID = uuid.New().String()
	tx.UserID = ownerID
	tx.CreatedAt = time.Now()

	if err := u.repo.CreateTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	return tx.ID, nil
}

// ListTransactions returns the owner's transactions matching the filter
func (u *TransactionUC) ListTransactions(ctx context.Context, ownerID string, filter models.TransactionFilter) ([]models.Transaction, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id missing from request context")
	}

	return u.repo.ListTransactions(ctx, ownerID, filter)
}

// GetSummary returns the expense and income totals for the filtered set
func (u *TransactionUC) GetSummary(ctx context.Context, ownerID string, filter models.TransactionFilter) (*models.TransactionSummary, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id missing from request context")
	}

	return u.repo.GetSummary(ctx, ownerID, filter)
}

// UpdateTransaction replaces a transaction's mutable fields. The target id
// comes from the route, never the body; identifier and owner are immutable.
func (u *TransactionUC) UpdateTransaction(ctx context.Context, ownerID, id string, req *models.TransactionRequest) error {
	if ownerID == "" {
		return fmt.Errorf("owner id missing from request context")
	}

	tx, err := transactionFromRequest(req)
	if err != nil {
		return err
	}

	tx.ID = id
	tx.UserID = ownerID

	return u.repo.UpdateTransaction(ctx, tx)
}

// DeleteTransaction removes a transaction owned by the caller
func (u *TransactionUC) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return fmt.Errorf("owner id missing from request context")
	}

	return u.repo.DeleteTransaction(ctx, id, ownerID)
}

// transactionFromRequest validates the payload and maps it to a transaction.
// Validation runs before any store access and fails fast.
func transactionFromRequest(req *models.TransactionRequest) (*models.Transaction, error) {
	if req == nil || req.Title == "" || req.Amount == nil || req.Date == "" || req.Category == "" {
		return nil, models.NewValidationError("Missing required fields")
	}

	if req.Amount.IsNegative() {
		return nil, models.NewValidationError("Amount must be a non-negative number")
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, models.NewValidationError("Invalid date format, expected YYYY-MM-DD")
	}

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, models.NewValidationError("Unknown category")
	}

	return &models.Transaction{
		Title:     req.Title,
		Amount:    *req.Amount,
		Date:      date,
		Category:  category,
		IsExpense: req.IsExpense,
	}, nil
}
