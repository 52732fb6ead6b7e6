package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "expected %s, got %s %v", want, got, msgAndArgs)
}

func actual(year, month int, categoryID int64, ct CategoryType, amount string) Entry {
	return Entry{Year: year, Month: month, CategoryID: categoryID, CategoryType: ct, Amount: dec(amount)}
}
