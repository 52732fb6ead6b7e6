package domain

import "github.com/shopspring/decimal"

// AggregateMonths folds a year's entries into twelve month summaries.
//
// Entries are bucketed in one pass, then months are folded strictly in order
// 1..12 so that each running balance builds on the previous month's. Months
// without entries are zero-filled and carry the balance forward unchanged.
func AggregateMonths(ledger YearLedger, initialBalance decimal.Decimal) YearSummary {
	var actual, plan [MonthsPerYear]MonthTotals

	for _, e := range ledger.Actuals {
		if ValidMonth(e.Month) {
			actual[e.Month-1].add(e.CategoryType, e.Amount)
		}
	}
	for _, e := range ledger.Budgets {
		if ValidMonth(e.Month) {
			plan[e.Month-1].add(e.CategoryType, e.Amount)
		}
	}

	var summary YearSummary
	balance := initialBalance
	for i := 0; i < MonthsPerYear; i++ {
		actual[i].settle()
		plan[i].settle()
		balance = balance.Add(actual[i].Net)

		summary[i] = MonthSummary{
			Month:             i + 1,
			Income:            actual[i].Income,
			Expenses:          actual[i].Expenses,
			Investments:       actual[i].Investments,
			Net:               actual[i].Net,
			RunningBalance:    balance,
			BudgetIncome:      plan[i].Income,
			BudgetExpenses:    plan[i].Expenses,
			BudgetInvestments: plan[i].Investments,
			BudgetNet:         plan[i].Net,
		}
	}

	return summary
}

// PeriodTotals is the sum of the in-scope month summaries.
type PeriodTotals struct {
	Income            decimal.Decimal
	Expenses          decimal.Decimal
	Investments       decimal.Decimal
	Net               decimal.Decimal
	BudgetIncome      decimal.Decimal
	BudgetExpenses    decimal.Decimal
	BudgetInvestments decimal.Decimal
	BudgetNet         decimal.Decimal
	StartingBalance   decimal.Decimal
	EndingBalance     decimal.Decimal
	MonthCount        int
}

// ReducePeriod sums the summaries of the months in scope. Balances are read
// from the summaries' running balance, never recomputed.
func ReducePeriod(months YearSummary, scope []int, initialBalance decimal.Decimal) PeriodTotals {
	totals := PeriodTotals{
		StartingBalance: initialBalance,
		EndingBalance:   initialBalance,
	}

	for _, m := range scope {
		if !ValidMonth(m) {
			continue
		}
		s := months.Month(m)
		totals.Income = totals.Income.Add(s.Income)
		totals.Expenses = totals.Expenses.Add(s.Expenses)
		totals.Investments = totals.Investments.Add(s.Investments)
		totals.Net = totals.Net.Add(s.Net)
		totals.BudgetIncome = totals.BudgetIncome.Add(s.BudgetIncome)
		totals.BudgetExpenses = totals.BudgetExpenses.Add(s.BudgetExpenses)
		totals.BudgetInvestments = totals.BudgetInvestments.Add(s.BudgetInvestments)
		totals.EndingBalance = s.RunningBalance
		totals.MonthCount++
	}
	totals.BudgetNet = totals.BudgetIncome.Sub(totals.BudgetExpenses).Sub(totals.BudgetInvestments)

	if first := (PeriodWindow{Months: scope}).First(); totals.MonthCount > 0 && first > 1 && ValidMonth(first) {
		totals.StartingBalance = months.Month(first - 1).RunningBalance
	}

	return totals
}

// Totals returns the actual buckets of the period.
func (p PeriodTotals) Totals() MonthTotals {
	return MonthTotals{
		Income:      p.Income,
		Expenses:    p.Expenses,
		Investments: p.Investments,
		Net:         p.Net,
	}
}
