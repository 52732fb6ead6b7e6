package domain

// DashboardInput is everything the dashboard computation reads. Both ledgers
// must come from one consistent snapshot.
type DashboardInput struct {
	Year         int
	View         ViewSpec
	HideEmpty    bool
	Sort         CategorySort
	Settings     Settings
	Current      YearLedger
	PreviousYear YearLedger
	Categories   []*Category
}

// Dashboard is the derived view of one period. It has no behaviour beyond
// accessors and is recomputed for every request.
type Dashboard struct {
	Year        int
	View        ViewSpec
	Label       string
	Settings    Settings
	Window      PeriodWindow
	Months      YearSummary
	Totals      PeriodTotals
	Previous    PreviousTotals
	Trends      map[Metric]Trend
	Progress    map[Metric]Progress
	Categories  []CategoryTotalRow
	Sort        CategorySort
	TrendPoints []TrendPoint
}

// ScopedMonths returns the summaries of the in-scope months.
func (d *Dashboard) ScopedMonths() []MonthSummary {
	out := make([]MonthSummary, 0, len(d.Window.Months))
	for _, m := range d.Window.Months {
		out = append(out, d.Months.Month(m))
	}
	return out
}

// BuildDashboard runs the aggregation pipeline: monthly fold, period
// selection and reduction, previous-period comparison, trends and the
// category projection.
func BuildDashboard(in DashboardInput) Dashboard {
	window := NewPeriodWindow(in.Year, in.View)
	months := AggregateMonths(in.Current, in.Settings.InitialBalance)
	totals := ReducePeriod(months, window.Months, in.Settings.InitialBalance)

	previous := ComparePrevious(PreviousPeriod(in.Year, in.View.Mode, window.Months), in.Current, in.PreviousYear)

	trends := map[Metric]Trend{
		MetricIncome:      CalculateTrend(totals.Income, previous.Income),
		MetricExpenses:    CalculateTrend(totals.Expenses, previous.Expenses),
		MetricInvestments: CalculateTrend(totals.Investments, previous.Investments),
		MetricNet:         CalculateTrend(totals.Net, previous.Net),
	}

	progress := map[Metric]Progress{
		MetricIncome:      EvaluateProgress(MetricIncome, totals.BudgetIncome, totals.Income),
		MetricExpenses:    EvaluateProgress(MetricExpenses, totals.BudgetExpenses, totals.Expenses),
		MetricInvestments: EvaluateProgress(MetricInvestments, totals.BudgetInvestments, totals.Investments),
		MetricNet:         EvaluateProgress(MetricNet, totals.BudgetNet, totals.Net),
	}

	categoryTotals := CollectCategoryTotals(in.Current, window.Months)
	rows := ProjectCategoryTotals(in.Categories, categoryTotals, previous.ByCategory, in.HideEmpty)
	order := in.Sort
	if order.Key == "" {
		order = DefaultCategorySort
	}
	order.Key = ParseCategorySortKey(string(order.Key))
	SortCategoryRows(rows, order)

	return Dashboard{
		Year:        in.Year,
		View:        in.View,
		Label:       PeriodLabel(in.Year, in.View),
		Settings:    in.Settings,
		Window:      window,
		Months:      months,
		Totals:      totals,
		Previous:    previous,
		Trends:      trends,
		Progress:    progress,
		Categories:  rows,
		Sort:        order,
		TrendPoints: BuildTrendPoints(months, window.Months, DecemberTotals(in.PreviousYear), in.View.Mode),
	}
}
