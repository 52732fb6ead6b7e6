package domain

import "github.com/shopspring/decimal"

// CategoryTotals holds period actual and plan sums keyed by category id.
type CategoryTotals struct {
	Actual map[int64]decimal.Decimal
	Plan   map[int64]decimal.Decimal
}

// CollectCategoryTotals sums a ledger's entries per category over the
// months in scope.
func CollectCategoryTotals(ledger YearLedger, scope []int) CategoryTotals {
	window := PeriodWindow{Year: ledger.Year, Months: scope}

	totals := CategoryTotals{
		Actual: make(map[int64]decimal.Decimal),
		Plan:   make(map[int64]decimal.Decimal),
	}
	for _, e := range ledger.Actuals {
		if window.Contains(e.Month) {
			totals.Actual[e.CategoryID] = totals.Actual[e.CategoryID].Add(e.Amount)
		}
	}
	for _, e := range ledger.Budgets {
		if window.Contains(e.Month) {
			totals.Plan[e.CategoryID] = totals.Plan[e.CategoryID].Add(e.Amount)
		}
	}

	return totals
}

// CategoryTotalRow is one category's period figures.
type CategoryTotalRow struct {
	CategoryID     int64
	Name           string
	Type           CategoryType
	Plan           decimal.Decimal
	Actual         decimal.Decimal
	PreviousActual decimal.Decimal
}

// Diff returns actual minus plan.
func (r CategoryTotalRow) Diff() decimal.Decimal {
	return r.Actual.Sub(r.Plan)
}

// Trend returns the change of actual against the previous period.
func (r CategoryTotalRow) Trend() Trend {
	return CalculateTrend(r.Actual, r.PreviousActual)
}

// ProjectCategoryTotals builds one row per category, in the order given.
// With hideEmpty set, categories whose period actual is exactly zero are
// left out regardless of their plan.
func ProjectCategoryTotals(
	categories []*Category,
	totals CategoryTotals,
	previous map[int64]decimal.Decimal,
	hideEmpty bool,
) []CategoryTotalRow {
	rows := make([]CategoryTotalRow, 0, len(categories))
	for _, c := range categories {
		actual := totals.Actual[c.ID]
		if hideEmpty && actual.IsZero() {
			continue
		}

		rows = append(rows, CategoryTotalRow{
			CategoryID:     c.ID,
			Name:           c.Name,
			Type:           c.Type,
			Plan:           totals.Plan[c.ID],
			Actual:         actual,
			PreviousActual: previous[c.ID],
		})
	}
	return rows
}
