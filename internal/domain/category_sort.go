package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// CategorySortKey selects the column category rows are ordered by.
type CategorySortKey string

const (
	SortByPlan   CategorySortKey = "plan"
	SortByActual CategorySortKey = "actual"
	SortByDiff   CategorySortKey = "diff"
	SortByTrend  CategorySortKey = "trend"
)

// ParseCategorySortKey parses a sort key. Unknown values fall back to
// SortByActual.
func ParseCategorySortKey(s string) CategorySortKey {
	switch CategorySortKey(s) {
	case SortByPlan, SortByActual, SortByDiff, SortByTrend:
		return CategorySortKey(s)
	default:
		return SortByActual
	}
}

// CategorySort is the ordering applied to category rows within each type group.
type CategorySort struct {
	Key  CategorySortKey
	Desc bool
}

// DefaultCategorySort orders rows by actual, largest first.
var DefaultCategorySort = CategorySort{Key: SortByActual, Desc: true}

var categoryTypeOrder = map[CategoryType]int{
	CategoryIncome:     0,
	CategoryExpense:    1,
	CategoryInvestment: 2,
	CategoryOther:      3,
}

func (k CategorySortKey) value(r CategoryTotalRow) decimal.Decimal {
	switch k {
	case SortByPlan:
		return r.Plan
	case SortByDiff:
		return r.Diff()
	case SortByTrend:
		return r.Trend().SortValue()
	default:
		return r.Actual
	}
}

// SortCategoryRows groups rows by type (income, expense, investment, other)
// and orders each group by the sort key. Equal values are ordered by name.
// rows is sorted in place.
func SortCategoryRows(rows []CategoryTotalRow, order CategorySort) {
	key := ParseCategorySortKey(string(order.Key))

	slices.SortStableFunc(rows, func(a, b CategoryTotalRow) int {
		if ga, gb := typeRank(a.Type), typeRank(b.Type); ga != gb {
			return ga - gb
		}
		if c := key.value(a).Cmp(key.value(b)); c != 0 {
			if order.Desc {
				return -c
			}
			return c
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

func typeRank(t CategoryType) int {
	if r, ok := categoryTypeOrder[t]; ok {
		return r
	}
	return len(categoryTypeOrder)
}
