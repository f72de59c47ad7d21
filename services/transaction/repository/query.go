package repository

import (
	"fmt"

	"github.com/quangnguyen9723/finance-manager/internal/pkg/models"
)

// buildFilterClause compiles the owner scope plus any present filters into a
// parameterized WHERE clause. The owner predicate always comes first; present
// filters follow in a fixed order (start_date, end_date, category, is_expense)
// with placeholders numbered after the owner parameter. Values are never
// interpolated into the query text.
func buildFilterClause(ownerID string, f models.TransactionFilter) (string, []interface{}) {
	clause := "WHERE user_id = $1"
	args := []interface{}{ownerID}
	idx := 2

	if f.StartDate != nil {
		clause += fmt.Sprintf(" AND date >= $%d", idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		clause += fmt.Sprintf(" AND date <= $%d", idx)
		args = append(args, *f.EndDate)
		idx++
	}
	if f.Category != nil {
		clause += fmt.Sprintf(" AND category = $%d", idx)
		args = append(args, *f.Category)
		idx++
	}
	if f.IsExpense != nil {
		clause += fmt.Sprintf(" AND is_expense = $%d", idx)
		args = append(args, *f.IsExpense)
	}

	return clause, args
}
