package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMonths_EmptyLedgerIsZeroFilled(t *testing.T) {
	months := AggregateMonths(YearLedger{Year: 2024}, dec("750.50"))

	for i, s := range months {
		assert.Equal(t, i+1, s.Month)
		for _, v := range []decimal.Decimal{
			s.Income, s.Expenses, s.Investments, s.Net,
			s.BudgetIncome, s.BudgetExpenses, s.BudgetInvestments, s.BudgetNet,
		} {
			assert.True(t, v.IsZero(), "month %d has non-zero field %s", s.Month, v)
		}
		assertDecimal(t, "750.50", s.RunningBalance, "month", s.Month)
	}
}

func TestAggregateMonths_EmptyMonthCarriesBalance(t *testing.T) {
	ledger := YearLedger{
		Year: 2024,
		Actuals: []Entry{
			actual(2024, 3, 1, CategoryIncome, "100"),
			actual(2024, 7, 2, CategoryExpense, "40"),
		},
	}

	months := AggregateMonths(ledger, decimal.Zero)

	for m := 2; m <= MonthsPerYear; m++ {
		cur := months.Month(m)
		if cur.Net.IsZero() {
			assert.True(t, cur.RunningBalance.Equal(months.Month(m-1).RunningBalance),
				"month %d should carry balance forward", m)
		}
	}
	assertDecimal(t, "100", months.Month(3).RunningBalance)
	assertDecimal(t, "60", months.Month(12).RunningBalance)
}

func TestAggregateMonths_FinalBalanceEqualsInitialPlusNet(t *testing.T) {
	ledger := YearLedger{Year: 2023}
	types := []CategoryType{CategoryIncome, CategoryExpense, CategoryInvestment, CategoryOther}
	for m := 1; m <= MonthsPerYear; m++ {
		for i, ct := range types {
			amount := decimal.NewFromInt(int64(m*37 + i*11)).Div(decimal.NewFromInt(7)).Round(2)
			ledger.Actuals = append(ledger.Actuals, Entry{
				Year: 2023, Month: m, CategoryID: int64(i + 1), CategoryType: ct, Amount: amount,
			})
		}
	}

	initial := dec("1234.56")
	months := AggregateMonths(ledger, initial)

	sum := decimal.Zero
	for _, s := range months {
		sum = sum.Add(s.Net)
		assert.True(t, s.Net.Equal(s.Income.Sub(s.Expenses).Sub(s.Investments)))
	}
	assert.True(t, months.Month(12).RunningBalance.Equal(initial.Add(sum)))
}

func TestAggregateMonths_DecimalPrecision(t *testing.T) {
	ledger := YearLedger{Year: 2024}
	for i := 0; i < 10; i++ {
		ledger.Actuals = append(ledger.Actuals, actual(2024, 1, int64(i), CategoryIncome, "0.10"))
	}
	ledger.Actuals = append(ledger.Actuals, actual(2024, 1, 99, CategoryExpense, "0.30"))

	months := AggregateMonths(ledger, decimal.Zero)

	assertDecimal(t, "1.00", months.Month(1).Income)
	assertDecimal(t, "0.70", months.Month(1).Net)
}

func TestAggregateMonths_BudgetsAndOtherTypes(t *testing.T) {
	ledger := YearLedger{
		Year: 2024,
		Actuals: []Entry{
			actual(2024, 5, 1, CategoryOther, "999"),
			actual(2024, 13, 1, CategoryIncome, "999"),
		},
		Budgets: []Entry{
			actual(2024, 5, 1, CategoryIncome, "3000"),
			actual(2024, 5, 2, CategoryExpense, "1200"),
			actual(2024, 5, 3, CategoryInvestment, "300"),
		},
	}

	months := AggregateMonths(ledger, dec("10"))
	may := months.Month(5)

	assert.True(t, may.Net.IsZero(), "other-typed entries do not affect net")
	assertDecimal(t, "3000", may.BudgetIncome)
	assertDecimal(t, "1200", may.BudgetExpenses)
	assertDecimal(t, "300", may.BudgetInvestments)
	assertDecimal(t, "1500", may.BudgetNet)
	assertDecimal(t, "10", months.Month(12).RunningBalance, "budgets never move the balance")
}

func TestReducePeriod_RangeScenario(t *testing.T) {
	ledger := YearLedger{
		Year: 2024,
		Actuals: []Entry{
			actual(2024, 1, 1, CategoryIncome, "5000"),
			actual(2024, 1, 2, CategoryExpense, "2000"),
			actual(2024, 1, 3, CategoryInvestment, "500"),
		},
	}
	settings := Settings{InitialBalance: dec("1000"), Currency: "USD"}

	months := AggregateMonths(ledger, settings.InitialBalance)
	assertDecimal(t, "2500", months.Month(1).Net)
	assertDecimal(t, "3500", months.Month(1).RunningBalance)
	assert.True(t, months.Month(2).Net.IsZero())
	assertDecimal(t, "3500", months.Month(2).RunningBalance)

	scope := SelectPeriod(ViewSpec{Mode: ViewRange, From: 1, To: 2})
	totals := ReducePeriod(months, scope, settings.InitialBalance)

	assertDecimal(t, "5000", totals.Income)
	assertDecimal(t, "2000", totals.Expenses)
	assertDecimal(t, "500", totals.Investments)
	assertDecimal(t, "2500", totals.Net)
	assertDecimal(t, "1000", totals.StartingBalance)
	assertDecimal(t, "3500", totals.EndingBalance)
	assert.Equal(t, 2, totals.MonthCount)
}

func TestReducePeriod_StartingBalanceFromPreviousMonth(t *testing.T) {
	ledger := YearLedger{
		Year: 2024,
		Actuals: []Entry{
			actual(2024, 1, 1, CategoryIncome, "100"),
			actual(2024, 2, 1, CategoryIncome, "200"),
			actual(2024, 3, 1, CategoryIncome, "400"),
			actual(2024, 4, 2, CategoryExpense, "50"),
		},
		Budgets: []Entry{
			actual(2024, 3, 1, CategoryIncome, "500"),
			actual(2024, 4, 2, CategoryExpense, "80"),
		},
	}
	months := AggregateMonths(ledger, dec("1000"))

	totals := ReducePeriod(months, []int{3, 4}, dec("1000"))

	assertDecimal(t, "1300", totals.StartingBalance)
	assertDecimal(t, "1650", totals.EndingBalance)
	assertDecimal(t, "400", totals.Income)
	assertDecimal(t, "350", totals.Net)
	assertDecimal(t, "500", totals.BudgetIncome)
	assertDecimal(t, "80", totals.BudgetExpenses)
	assertDecimal(t, "420", totals.BudgetNet)
}

func TestReducePeriod_EmptyScope(t *testing.T) {
	months := AggregateMonths(YearLedger{
		Year:    2024,
		Actuals: []Entry{actual(2024, 1, 1, CategoryIncome, "10")},
	}, dec("5"))

	totals := ReducePeriod(months, []int{}, dec("5"))

	require.Equal(t, 0, totals.MonthCount)
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Net.IsZero())
	assertDecimal(t, "5", totals.StartingBalance)
	assertDecimal(t, "5", totals.EndingBalance)
}

func TestReducePeriod_YTDScenario(t *testing.T) {
	ledger := YearLedger{
		Year:    2024,
		Actuals: []Entry{actual(2024, 3, 1, CategoryIncome, "1200")},
	}
	months := AggregateMonths(ledger, decimal.Zero)

	scope := SelectPeriod(ViewSpec{Mode: ViewYTD, Month: 3})
	require.Equal(t, []int{1, 2, 3}, scope)

	totals := ReducePeriod(months, scope, decimal.Zero)
	assertDecimal(t, "1200", totals.Income)
	assertDecimal(t, "1200", totals.Net)
	assertDecimal(t, "0", totals.StartingBalance)
	assertDecimal(t, "1200", totals.EndingBalance)
}
