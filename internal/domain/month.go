package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the number of calendar months in a year.
const MonthsPerYear = 12

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month int
}

// Prev returns the preceding calendar month.
func (ym YearMonth) Prev() YearMonth {
	if ym.Month <= 1 {
		return YearMonth{Year: ym.Year - 1, Month: MonthsPerYear}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// ValidMonth reports whether m is a calendar month number.
func ValidMonth(m int) bool {
	return m >= 1 && m <= MonthsPerYear
}

// MonthLabel returns the short English name of a month, e.g. "Jan".
func MonthLabel(m int) string {
	if !ValidMonth(m) {
		return ""
	}
	return time.Month(m).String()[:3]
}

// MonthTotals holds actual totals per bucket for one month or period.
type MonthTotals struct {
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Investments decimal.Decimal
	Net         decimal.Decimal
}

// add adds amount to the bucket of the given type. Other-typed amounts
// belong to no bucket.
func (t *MonthTotals) add(ct CategoryType, amount decimal.Decimal) {
	switch ct {
	case CategoryIncome:
		t.Income = t.Income.Add(amount)
	case CategoryExpense:
		t.Expenses = t.Expenses.Add(amount)
	case CategoryInvestment:
		t.Investments = t.Investments.Add(amount)
	}
}

// settle computes Net from the buckets.
func (t *MonthTotals) settle() {
	t.Net = t.Income.Sub(t.Expenses).Sub(t.Investments)
}

// Value returns the bucket of the given metric.
func (t MonthTotals) Value(metric Metric) decimal.Decimal {
	switch metric {
	case MetricIncome:
		return t.Income
	case MetricExpenses:
		return t.Expenses
	case MetricInvestments:
		return t.Investments
	case MetricNet:
		return t.Net
	default:
		return decimal.Zero
	}
}

// MonthSummary is the derived actual and plan figures for one month.
type MonthSummary struct {
	Month             int
	Income            decimal.Decimal
	Expenses          decimal.Decimal
	Investments       decimal.Decimal
	Net               decimal.Decimal
	RunningBalance    decimal.Decimal
	BudgetIncome      decimal.Decimal
	BudgetExpenses    decimal.Decimal
	BudgetInvestments decimal.Decimal
	BudgetNet         decimal.Decimal
}

// Totals returns the actual buckets of the month.
func (s MonthSummary) Totals() MonthTotals {
	return MonthTotals{
		Income:      s.Income,
		Expenses:    s.Expenses,
		Investments: s.Investments,
		Net:         s.Net,
	}
}

// YearSummary holds the summaries of months 1 through 12 in order.
type YearSummary [MonthsPerYear]MonthSummary

// Month returns the summary of month m (1-12).
func (y *YearSummary) Month(m int) MonthSummary {
	return y[m-1]
}
