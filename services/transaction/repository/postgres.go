package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
	"github.com/quangnguyen9723/finance-manager/services/transaction"
)

// PostgresTransactionRepo implements the TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) transaction.TransactionRepo {
	return &PostgresTransactionRepo{db: db}
}

// CreateTransaction inserts a new transaction record
func (r *PostgresTransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, title, amount, date, category, is_expense, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.UserID, tx.Title, tx.Amount, tx.Date, tx.Category, tx.IsExpense, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions returns the owner's transactions matching the filter,
// most recent date first. Equal dates fall back to creation time descending.
func (r *PostgresTransactionRepo) ListTransactions(ctx context.Context, ownerID string, filter models.TransactionFilter) ([]models.Transaction, error) {
	clause, args := buildFilterClause(ownerID, filter)
	query := `
		SELECT id, user_id, title, amount, date, category, is_expense, created_at
		FROM transactions
	` + clause + ` ORDER BY date DESC, created_at DESC`

	transactions := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// GetSummary reduces the filtered set to expense and income totals. An empty
// set yields zero totals, not NULLs.
func (r *PostgresTransactionRepo) GetSummary(ctx context.Context, ownerID string, filter models.TransactionFilter) (*models.TransactionSummary, error) {
	clause, args := buildFilterClause(ownerID, filter)
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN is_expense THEN amount ELSE 0 END), 0) AS total_expenses,
			COALESCE(SUM(CASE WHEN NOT is_expense THEN amount ELSE 0 END), 0) AS total_income
		FROM transactions
	` + clause

	var summary models.TransactionSummary
	if err := r.db.GetContext(ctx, &summary, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get transaction summary: %w", err)
	}

	return &summary, nil
}

// UpdateTransaction replaces the mutable fields of a transaction. The
// statement matches both id and owner, so a row owned by someone else is
// indistinguishable from a missing one.
func (r *PostgresTransactionRepo) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET title = $1, amount = $2, date = $3, category = $4, is_expense = $5
		WHERE id = $6 AND user_id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		tx.Title, tx.Amount, tx.Date, tx.Category, tx.IsExpense, tx.ID, tx.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction owned by the caller
func (r *PostgresTransactionRepo) DeleteTransaction(ctx context.Context, id, ownerID string) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM transactions
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
