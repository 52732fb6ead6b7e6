package domain

import "fmt"

// ViewMode selects how the dashboard period is derived.
type ViewMode string

const (
	ViewFull  ViewMode = "full"
	ViewMonth ViewMode = "month"
	ViewYTD   ViewMode = "ytd"
	ViewRange ViewMode = "range"
)

// ParseViewMode parses a view mode. Unknown values fall back to ViewMonth.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(s) {
	case ViewFull, ViewMonth, ViewYTD, ViewRange:
		return ViewMode(s)
	default:
		return ViewMonth
	}
}

// ViewSpec is a caller's period selection. Month is used by ViewMonth and
// ViewYTD, From and To by ViewRange.
type ViewSpec struct {
	Mode  ViewMode
	Month int
	From  int
	To    int
}

// PeriodWindow is the set of in-scope months of one year.
type PeriodWindow struct {
	Year   int
	Months []int
}

// First returns the first in-scope month, or 0 when the window is empty.
func (w PeriodWindow) First() int {
	if len(w.Months) == 0 {
		return 0
	}
	return w.Months[0]
}

// Last returns the last in-scope month, or 0 when the window is empty.
func (w PeriodWindow) Last() int {
	if len(w.Months) == 0 {
		return 0
	}
	return w.Months[len(w.Months)-1]
}

// Contains reports whether month m is in scope.
func (w PeriodWindow) Contains(m int) bool {
	for _, s := range w.Months {
		if s == m {
			return true
		}
	}
	return false
}

// SelectPeriod resolves a view into an ascending list of months in 1..12.
// Out-of-range months are dropped; the result may be empty.
func SelectPeriod(spec ViewSpec) []int {
	switch spec.Mode {
	case ViewFull:
		return monthSpan(1, MonthsPerYear)
	case ViewYTD:
		return monthSpan(1, spec.Month)
	case ViewRange:
		from, to := spec.From, spec.To
		if from > to {
			from, to = to, from
		}
		return monthSpan(from, to)
	default:
		if !ValidMonth(spec.Month) {
			return []int{}
		}
		return []int{spec.Month}
	}
}

// NewPeriodWindow resolves spec for year.
func NewPeriodWindow(year int, spec ViewSpec) PeriodWindow {
	return PeriodWindow{Year: year, Months: SelectPeriod(spec)}
}

func monthSpan(from, to int) []int {
	from = max(from, 1)
	to = min(to, MonthsPerYear)

	months := make([]int, 0, max(to-from+1, 0))
	for m := from; m <= to; m++ {
		months = append(months, m)
	}
	return months
}

// NoMonthsLabel labels a selection that resolves to no months.
const NoMonthsLabel = "No months selected"

// PeriodLabel describes the selected period, e.g. "2024 YTD (Jan – Mar)".
// The label is built from the resolved window, so out-of-range months are
// clamped the same way the totals are.
func PeriodLabel(year int, spec ViewSpec) string {
	window := NewPeriodWindow(year, spec)
	if len(window.Months) == 0 {
		return NoMonthsLabel
	}

	switch spec.Mode {
	case ViewFull:
		return fmt.Sprintf("%d full year", year)
	case ViewYTD:
		return fmt.Sprintf("%d YTD (Jan – %s)", year, MonthLabel(window.Last()))
	case ViewRange:
		return fmt.Sprintf("%s – %s %d", MonthLabel(window.First()), MonthLabel(window.Last()), year)
	default:
		return fmt.Sprintf("%s %d", MonthLabel(window.First()), year)
	}
}
