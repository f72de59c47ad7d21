package transaction

import (
	"context"
	"errors"

	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
)

// ErrNotFound is returned when a mutation matched no row. An id owned by a
// different user is reported identically so existence of other users' records
// never leaks.
var ErrNotFound = errors.New("transaction not found")

// TransactionRepo defines the persistence operations for transactions
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context, ownerID string, filter models.TransactionFilter) ([]models.Transaction, error)
	GetSummary(ctx context.Context, ownerID string, filter models.TransactionFilter) (*models.TransactionSummary, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id, ownerID string) error
}

// TransactionUC defines the transaction business operations
type TransactionUC interface {
	CreateTransaction(ctx context.Context, ownerID string, req *models.TransactionRequest) (string, error)
	ListTransactions(ctx context.Context, ownerID string, filter models.TransactionFilter) ([]models.Transaction, error)
	GetSummary(ctx context.Context, ownerID string, filter models.TransactionFilter) (*models.TransactionSummary, error)
	UpdateTransaction(ctx context.Context, ownerID, id string, req *models.TransactionRequest) error
	DeleteTransaction(ctx context.Context, ownerID, id string) error
}
