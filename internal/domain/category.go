package domain

import (
	"fmt"
	"strings"
)

// CategoryType classifies a category for aggregation.
type CategoryType string

const (
	CategoryIncome     CategoryType = "INCOME"
	CategoryExpense    CategoryType = "EXPENSE"
	CategoryInvestment CategoryType = "INVESTMENT"
	CategoryOther      CategoryType = "OTHER"
)

// ParseCategoryType parses a category type name case-insensitively.
func ParseCategoryType(s string) (CategoryType, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	switch t {
	case "INVESTMENTS":
		return CategoryInvestment, nil
	case string(CategoryIncome), string(CategoryExpense), string(CategoryInvestment), string(CategoryOther):
		return CategoryType(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategoryType, s)
}

// Label returns the human readable name of the type.
func (t CategoryType) Label() string {
	switch t {
	case CategoryIncome:
		return "Income"
	case CategoryExpense:
		return "Expense"
	case CategoryInvestment:
		return "Investment"
	case CategoryOther:
		return "Other"
	default:
		return string(t)
	}
}

// Category is a ledger category. It is owned by category management and
// read-only here.
type Category struct {
	ID        int64
	Name      string
	Type      CategoryType
	IsActive  bool
	SortOrder int
}
