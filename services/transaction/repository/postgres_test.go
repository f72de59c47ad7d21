package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
	"github.com/quangnguyen9723/finance-manager/services/transaction"
	"github.com/quangnguyen9723/finance-manager/services/transaction/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var transactionColumns = []string{"id", "user_id", "title", "amount", "date", "category", "is_expense", "created_at"}

func TestCreateTransaction_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	tx := &models.Transaction{
		ID:        uuid.New().String(),
		UserID:    uuid.New().String(),
		Title:     "Coffee",
		Amount:    decimal.RequireFromString("4.50"),
		Date:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Category:  models.CategoryFood,
		IsExpense: true,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(tx.ID, tx.UserID, tx.Title, tx.Amount, tx.Date, tx.Category, tx.IsExpense, tx.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateTransaction(context.Background(), tx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction_StoreError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WillReturnError(assert.AnError)

	err := repo.CreateTransaction(context.Background(), &models.Transaction{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert transaction")
}

func TestListTransactions_NoFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	ownerID := uuid.New().String()
	rows := sqlmock.NewRows(transactionColumns).
		AddRow(uuid.New().String(), ownerID, "Coffee", "4.50",
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "food", true, time.Now()).
		AddRow(uuid.New().String(), ownerID, "Salary", "1200",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "income", false, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date DESC, created_at DESC")).
		WithArgs(ownerID).
		WillReturnRows(rows)

	transactions, err := repo.ListTransactions(context.Background(), ownerID, models.TransactionFilter{})
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "Coffee", transactions[0].Title)
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("4.50")))
	assert.Equal(t, models.CategoryIncome, transactions[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_WithFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	ownerID := uuid.New().String()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	category := models.CategoryFood
	isExpense := true

	mock.ExpectQuery(regexp.QuoteMeta("AND date >= $2 AND category = $3 AND is_expense = $4")).
		WithArgs(ownerID, start, category, isExpense).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	transactions, err := repo.ListTransactions(context.Background(), ownerID, models.TransactionFilter{
		StartDate: &start,
		Category:  &category,
		IsExpense: &isExpense,
	})
	assert.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSummary_Totals(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	ownerID := uuid.New().String()
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(CASE WHEN is_expense THEN amount ELSE 0 END), 0)")).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"total_expenses", "total_income"}).
			AddRow("104.50", "1200.00"))

	summary, err := repo.GetSummary(context.Background(), ownerID, models.TransactionFilter{})
	assert.NoError(t, err)
	assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("104.50")))
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("1200.00")))
}

func TestGetSummary_EmptySetYieldsZeroes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	ownerID := uuid.New().String()
	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"total_expenses", "total_income"}).
			AddRow("0", "0"))

	summary, err := repo.GetSummary(context.Background(), ownerID, models.TransactionFilter{})
	assert.NoError(t, err)
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.TotalIncome.IsZero())
}

func TestUpdateTransaction_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	tx := &models.Transaction{
		ID:        uuid.New().String(),
		UserID:    uuid.New().String(),
		Title:     "Groceries",
		Amount:    decimal.RequireFromString("52.10"),
		Date:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Category:  models.CategoryFood,
		IsExpense: true,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
		WithArgs(tx.Title, tx.Amount, tx.Date, tx.Category, tx.IsExpense, tx.ID, tx.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTransaction(context.Background(), tx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransaction_NotFoundOnZeroRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTransaction(context.Background(), &models.Transaction{
		ID:     uuid.New().String(),
		UserID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestDeleteTransaction_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	id := uuid.New().String()
	ownerID := uuid.New().String()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions")).
		WithArgs(id, ownerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteTransaction(context.Background(), id, ownerID)
	assert.NoError(t, err)
}

func TestDeleteTransaction_NotFoundOnZeroRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions")).
		WithArgs("missing-id", "owner").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTransaction(context.Background(), "missing-id", "owner")
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
