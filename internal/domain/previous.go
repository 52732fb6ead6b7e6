package domain

import "github.com/shopspring/decimal"

// PreviousPeriod returns the period the current scope is compared against,
// in chronological order.
//
// For year-to-date views this is the same months of the prior year. Otherwise
// it is the len(scope) months immediately before the first in-scope month,
// crossing into the prior year when the walk passes January.
func PreviousPeriod(year int, mode ViewMode, scope []int) []YearMonth {
	if len(scope) == 0 {
		return []YearMonth{}
	}

	if mode == ViewYTD {
		prev := make([]YearMonth, 0, len(scope))
		for _, m := range scope {
			prev = append(prev, YearMonth{Year: year - 1, Month: m})
		}
		return prev
	}

	prev := make([]YearMonth, len(scope))
	cursor := YearMonth{Year: year, Month: scope[0]}
	for i := len(scope) - 1; i >= 0; i-- {
		cursor = cursor.Prev()
		prev[i] = cursor
	}
	return prev
}

// PreviousTotals are the actual totals of a previous period.
type PreviousTotals struct {
	MonthTotals

	Months     []YearMonth
	ByCategory map[int64]decimal.Decimal
}

// ComparePrevious sums the actual entries that fall in the months of prev.
// Entries are taken from whichever supplied ledger matches each month's year;
// months of a year with no ledger contribute zero.
func ComparePrevious(prev []YearMonth, ledgers ...YearLedger) PreviousTotals {
	result := PreviousTotals{
		Months:     prev,
		ByCategory: make(map[int64]decimal.Decimal),
	}

	wanted := make(map[YearMonth]struct{}, len(prev))
	for _, ym := range prev {
		wanted[ym] = struct{}{}
	}

	seen := make(map[int]struct{}, len(ledgers))
	for _, ledger := range ledgers {
		if _, dup := seen[ledger.Year]; dup {
			continue
		}
		seen[ledger.Year] = struct{}{}

		for _, e := range ledger.Actuals {
			if _, ok := wanted[YearMonth{Year: ledger.Year, Month: e.Month}]; !ok {
				continue
			}
			result.add(e.CategoryType, e.Amount)
			result.ByCategory[e.CategoryID] = result.ByCategory[e.CategoryID].Add(e.Amount)
		}
	}
	result.settle()

	return result
}

// DecemberTotals returns the actual totals of December of the given ledger's
// year. It is the "previous month" of a January trend point.
func DecemberTotals(ledger YearLedger) MonthTotals {
	var totals MonthTotals
	for _, e := range ledger.Actuals {
		if e.Month == MonthsPerYear {
			totals.add(e.CategoryType, e.Amount)
		}
	}
	totals.settle()
	return totals
}
