package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted on the wire
const DateLayout = "2006-01-02"

// Amounts go out as JSON numbers, matching what clients already parse.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Category classifies a transaction. The set is fixed and shared with the
// mobile client; values are stored lowercase.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHousing        Category = "housing"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryHealth         Category = "health"
	CategoryShopping       Category = "shopping"
	CategoryIncome         Category = "income"
	CategoryOther          Category = "other"
)

var categories = map[Category]bool{
	CategoryFood:           true,
	CategoryTransportation: true,
	CategoryHousing:        true,
	CategoryUtilities:      true,
	CategoryEntertainment:  true,
	CategoryHealth:         true,
	CategoryShopping:       true,
	CategoryIncome:         true,
	CategoryOther:          true,
}

// ParseCategory normalizes a raw category string and reports whether it is one
// of the known categories. Client payloads may arrive capitalized.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, categories[c]
}

// Transaction represents a financial transaction record
type Transaction struct {
	ID        string          `json:"id" db:"id"`
	UserID    string          `json:"user_id" db:"user_id"`
	Title     string          `json:"title" db:"title"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Date      time.Time       `json:"date" db:"date"`
	Category  Category        `json:"category" db:"category"`
	IsExpense bool            `json:"is_expense" db:"is_expense"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// TransactionRequest is the create/update payload. Amount is a pointer so a
// missing field is distinguishable from zero; decimal.Decimal accepts both
// JSON numbers and numeric strings on the wire.
type TransactionRequest struct {
	Title     string           `json:"title"`
	Amount    *decimal.Decimal `json:"amount"`
	Date      string           `json:"date"`
	Category  string           `json:"category"`
	IsExpense bool             `json:"is_expense"`
}

// TransactionFilter narrows list and summary queries. Nil fields are absent
// filters; the owner scope is always applied separately.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *Category
	IsExpense *bool
}

// TransactionSummary holds the aggregated totals for a filtered set
type TransactionSummary struct {
	TotalExpenses decimal.Decimal `json:"total_expenses" db:"total_expenses"`
	TotalIncome   decimal.Decimal `json:"total_income" db:"total_income"`
}
