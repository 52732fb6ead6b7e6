package domain

// TrendPoint pairs a month's actual totals with the preceding calendar
// month's.
type TrendPoint struct {
	Month    int
	Current  MonthTotals
	Previous MonthTotals
}

// BuildTrendPoints returns one point per in-scope month. January is compared
// with december, the prior year's December totals. No points are produced for
// single-month views or scopes shorter than two months.
func BuildTrendPoints(months YearSummary, scope []int, december MonthTotals, mode ViewMode) []TrendPoint {
	if mode == ViewMonth || len(scope) < 2 {
		return []TrendPoint{}
	}

	points := make([]TrendPoint, 0, len(scope))
	for _, m := range scope {
		if !ValidMonth(m) {
			continue
		}
		prev := december
		if m > 1 {
			prev = months.Month(m - 1).Totals()
		}
		points = append(points, TrendPoint{
			Month:    m,
			Current:  months.Month(m).Totals(),
			Previous: prev,
		})
	}
	return points
}
