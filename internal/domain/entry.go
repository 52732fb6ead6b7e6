package domain

import (
	"github.com/shopspring/decimal"
)

// Entry is a single month/category amount. The same shape is used for
// actuals and for budget plans.
type Entry struct {
	Year         int
	Month        int
	CategoryID   int64
	CategoryType CategoryType
	Amount       decimal.Decimal
}

// YearLedger holds every actual and budget entry recorded for one year.
// Entries are not sorted.
type YearLedger struct {
	Year    int
	Actuals []Entry
	Budgets []Entry
}

// EntryMode selects actual entries, budget entries or both.
type EntryMode string

const (
	EntryModeActual EntryMode = "actual"
	EntryModePlan   EntryMode = "plan"
	EntryModeBoth   EntryMode = "both"
)

// ParseEntryMode parses an entry mode, defaulting to both when empty.
func ParseEntryMode(s string) (EntryMode, error) {
	switch EntryMode(s) {
	case "":
		return EntryModeBoth, nil
	case EntryModeActual, EntryModePlan, EntryModeBoth:
		return EntryMode(s), nil
	}
	return "", ErrInvalidEntryMode
}

// IncludesActual reports whether the mode covers actual entries.
func (m EntryMode) IncludesActual() bool {
	return m == EntryModeActual || m == EntryModeBoth
}

// IncludesPlan reports whether the mode covers budget entries.
func (m EntryMode) IncludesPlan() bool {
	return m == EntryModePlan || m == EntryModeBoth
}

// EntryKind distinguishes the actual and budget collections.
type EntryKind string

const (
	EntryKindActual EntryKind = "actual"
	EntryKindBudget EntryKind = "budget"
)
