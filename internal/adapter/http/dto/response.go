package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

// Trend display precision: the category table rounds to whole percent, the
// trend chart to one decimal.
const (
	categoryTrendPlaces = 0
	chartTrendPlaces    = 1
)

// MonthSummaryResponse represents one month of the yearly fold.
type MonthSummaryResponse struct {
	Month             int             `json:"month"`
	Label             string          `json:"label"`
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Investments       decimal.Decimal `json:"investments"`
	Net               decimal.Decimal `json:"net"`
	RunningBalance    decimal.Decimal `json:"running_balance"`
	BudgetIncome      decimal.Decimal `json:"budget_income"`
	BudgetExpenses    decimal.Decimal `json:"budget_expenses"`
	BudgetInvestments decimal.Decimal `json:"budget_investments"`
	BudgetNet         decimal.Decimal `json:"budget_net"`
}

// MonthSummaryFromDomain converts a month summary to response.
func MonthSummaryFromDomain(s domain.MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:             s.Month,
		Label:             domain.MonthLabel(s.Month),
		Income:            s.Income,
		Expenses:          s.Expenses,
		Investments:       s.Investments,
		Net:               s.Net,
		RunningBalance:    s.RunningBalance,
		BudgetIncome:      s.BudgetIncome,
		BudgetExpenses:    s.BudgetExpenses,
		BudgetInvestments: s.BudgetInvestments,
		BudgetNet:         s.BudgetNet,
	}
}

// PeriodTotalsResponse represents the totals of the selected period.
type PeriodTotalsResponse struct {
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Investments       decimal.Decimal `json:"investments"`
	Net               decimal.Decimal `json:"net"`
	BudgetIncome      decimal.Decimal `json:"budget_income"`
	BudgetExpenses    decimal.Decimal `json:"budget_expenses"`
	BudgetInvestments decimal.Decimal `json:"budget_investments"`
	BudgetNet         decimal.Decimal `json:"budget_net"`
	StartingBalance   decimal.Decimal `json:"starting_balance"`
	EndingBalance     decimal.Decimal `json:"ending_balance"`
	MonthCount        int             `json:"month_count"`
}

// PreviousTotalsResponse represents the comparison period.
type PreviousTotalsResponse struct {
	Months      []string        `json:"months"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Investments decimal.Decimal `json:"investments"`
	Net         decimal.Decimal `json:"net"`
}

// TrendResponse is a percentage change. Percent is omitted for the
// sentinel kinds.
type TrendResponse struct {
	Kind      string           `json:"kind"`
	Display   string           `json:"display"`
	Percent   *decimal.Decimal `json:"percent,omitempty"`
	Favorable bool             `json:"favorable"`
}

// TrendFromDomain converts a trend to response, rounding the display to places.
func TrendFromDomain(metric domain.Metric, t domain.Trend, places int32) TrendResponse {
	resp := TrendResponse{
		Kind:      trendKind(t.Kind),
		Display:   t.Format(places),
		Favorable: domain.Favorable(metric, t),
	}
	if t.Kind == domain.TrendValue {
		p := t.Percent.Round(places)
		resp.Percent = &p
	}
	return resp
}

func sortDir(desc bool) string {
	if desc {
		return "desc"
	}
	return "asc"
}

func trendKind(k domain.TrendKind) string {
	switch k {
	case domain.TrendNew:
		return "new"
	case domain.TrendValue:
		return "value"
	default:
		return "none"
	}
}

// ProgressResponse represents plan progress of a KPI.
type ProgressResponse struct {
	FillPercent decimal.Decimal `json:"fill_percent"`
	OverBudget  bool            `json:"over_budget"`
	OnTrack     bool            `json:"on_track"`
}

// MetricResponse is one KPI card: actual against plan and previous period.
type MetricResponse struct {
	Actual   decimal.Decimal  `json:"actual"`
	Plan     decimal.Decimal  `json:"plan"`
	Previous decimal.Decimal  `json:"previous"`
	Trend    TrendResponse    `json:"trend"`
	Progress ProgressResponse `json:"progress"`
}

// CategoryRowResponse is one row of the category totals table.
type CategoryRowResponse struct {
	CategoryID     int64           `json:"category_id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Plan           decimal.Decimal `json:"plan"`
	Actual         decimal.Decimal `json:"actual"`
	Diff           decimal.Decimal `json:"diff"`
	PreviousActual decimal.Decimal `json:"previous_actual"`
	Trend          string          `json:"trend"`
	TrendKind      string          `json:"trend_kind"`
	Favorable      bool            `json:"favorable"`
}

// TrendPointResponse is one month of the trend chart.
type TrendPointResponse struct {
	Month               int             `json:"month"`
	Label               string          `json:"label"`
	Income              decimal.Decimal `json:"income"`
	Expenses            decimal.Decimal `json:"expenses"`
	Investments         decimal.Decimal `json:"investments"`
	Net                 decimal.Decimal `json:"net"`
	PreviousIncome      decimal.Decimal `json:"previous_income"`
	PreviousExpenses    decimal.Decimal `json:"previous_expenses"`
	PreviousInvestments decimal.Decimal `json:"previous_investments"`
	PreviousNet         decimal.Decimal `json:"previous_net"`
	IncomeTrend         string          `json:"income_trend"`
	ExpensesTrend       string          `json:"expenses_trend"`
	InvestmentsTrend    string          `json:"investments_trend"`
	NetTrend            string          `json:"net_trend"`
}

// DashboardResponse represents a computed dashboard.
type DashboardResponse struct {
	Year           int                       `json:"year"`
	View           string                    `json:"view"`
	Month          int                       `json:"month,omitempty"`
	MonthFrom      int                       `json:"month_from,omitempty"`
	MonthTo        int                       `json:"month_to,omitempty"`
	Period         string                    `json:"period"`
	Currency       string                    `json:"currency"`
	InitialBalance decimal.Decimal           `json:"initial_balance"`
	Months         []MonthSummaryResponse    `json:"months"`
	AllMonths      []MonthSummaryResponse    `json:"all_months"`
	Totals         PeriodTotalsResponse      `json:"totals"`
	Previous       PreviousTotalsResponse    `json:"previous"`
	Metrics        map[string]MetricResponse `json:"metrics"`
	Categories     []CategoryRowResponse     `json:"categories"`
	Sort           string                    `json:"sort"`
	SortDir        string                    `json:"sort_dir"`
	TrendPoints    []TrendPointResponse      `json:"trend_points"`
}

// DashboardFromDomain converts a dashboard to response.
func DashboardFromDomain(d *domain.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		Year:           d.Year,
		View:           string(d.View.Mode),
		Period:         d.Label,
		Currency:       d.Settings.Currency,
		InitialBalance: d.Settings.InitialBalance,
		Months:         make([]MonthSummaryResponse, 0, len(d.Window.Months)),
		AllMonths:      make([]MonthSummaryResponse, 0, domain.MonthsPerYear),
		Categories:     make([]CategoryRowResponse, 0, len(d.Categories)),
		TrendPoints:    make([]TrendPointResponse, 0, len(d.TrendPoints)),
		Metrics:        make(map[string]MetricResponse, 4),
		Sort:           string(d.Sort.Key),
		SortDir:        sortDir(d.Sort.Desc),
	}

	switch d.View.Mode {
	case domain.ViewMonth, domain.ViewYTD:
		resp.Month = d.View.Month
	case domain.ViewRange:
		resp.MonthFrom = d.View.From
		resp.MonthTo = d.View.To
	}

	for _, s := range d.ScopedMonths() {
		resp.Months = append(resp.Months, MonthSummaryFromDomain(s))
	}
	for _, s := range d.Months {
		resp.AllMonths = append(resp.AllMonths, MonthSummaryFromDomain(s))
	}

	t := d.Totals
	resp.Totals = PeriodTotalsResponse{
		Income:            t.Income,
		Expenses:          t.Expenses,
		Investments:       t.Investments,
		Net:               t.Net,
		BudgetIncome:      t.BudgetIncome,
		BudgetExpenses:    t.BudgetExpenses,
		BudgetInvestments: t.BudgetInvestments,
		BudgetNet:         t.BudgetNet,
		StartingBalance:   t.StartingBalance,
		EndingBalance:     t.EndingBalance,
		MonthCount:        t.MonthCount,
	}

	resp.Previous = PreviousTotalsResponse{
		Months:      make([]string, 0, len(d.Previous.Months)),
		Income:      d.Previous.Income,
		Expenses:    d.Previous.Expenses,
		Investments: d.Previous.Investments,
		Net:         d.Previous.Net,
	}
	for _, ym := range d.Previous.Months {
		resp.Previous.Months = append(resp.Previous.Months, fmt.Sprintf("%04d-%02d", ym.Year, ym.Month))
	}

	current := d.Totals.Totals()
	plans := map[domain.Metric]decimal.Decimal{
		domain.MetricIncome:      t.BudgetIncome,
		domain.MetricExpenses:    t.BudgetExpenses,
		domain.MetricInvestments: t.BudgetInvestments,
		domain.MetricNet:         t.BudgetNet,
	}
	for _, metric := range []domain.Metric{domain.MetricIncome, domain.MetricExpenses, domain.MetricInvestments, domain.MetricNet} {
		progress := d.Progress[metric]
		resp.Metrics[string(metric)] = MetricResponse{
			Actual:   current.Value(metric),
			Plan:     plans[metric],
			Previous: d.Previous.Value(metric),
			Trend:    TrendFromDomain(metric, d.Trends[metric], categoryTrendPlaces),
			Progress: ProgressResponse{
				FillPercent: progress.FillPercent,
				OverBudget:  progress.OverBudget,
				OnTrack:     progress.OnTrack,
			},
		}
	}

	for _, row := range d.Categories {
		resp.Categories = append(resp.Categories, CategoryRowResponse{
			CategoryID:     row.CategoryID,
			Name:           row.Name,
			Type:           string(row.Type),
			Plan:           row.Plan,
			Actual:         row.Actual,
			Diff:           row.Diff(),
			PreviousActual: row.PreviousActual,
			Trend:          row.Trend().Format(categoryTrendPlaces),
			TrendKind:      trendKind(row.Trend().Kind),
			Favorable:      domain.Favorable(domain.MetricForType(row.Type), row.Trend()),
		})
	}

	for _, p := range d.TrendPoints {
		resp.TrendPoints = append(resp.TrendPoints, TrendPointResponse{
			Month:               p.Month,
			Label:               domain.MonthLabel(p.Month),
			Income:              p.Current.Income,
			Expenses:            p.Current.Expenses,
			Investments:         p.Current.Investments,
			Net:                 p.Current.Net,
			PreviousIncome:      p.Previous.Income,
			PreviousExpenses:    p.Previous.Expenses,
			PreviousInvestments: p.Previous.Investments,
			PreviousNet:         p.Previous.Net,
			IncomeTrend:         domain.CalculateTrend(p.Current.Income, p.Previous.Income).Format(chartTrendPlaces),
			ExpensesTrend:       domain.CalculateTrend(p.Current.Expenses, p.Previous.Expenses).Format(chartTrendPlaces),
			InvestmentsTrend:    domain.CalculateTrend(p.Current.Investments, p.Previous.Investments).Format(chartTrendPlaces),
			NetTrend:            domain.CalculateTrend(p.Current.Net, p.Previous.Net).Format(chartTrendPlaces),
		})
	}

	return resp
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []CategoryResponse {
	result := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			Type:      string(c.Type),
			TypeLabel: c.Type.Label(),
			IsActive:  c.IsActive,
			SortOrder: c.SortOrder,
		}
	}
	return result
}

// SettingsResponse represents the settings in API responses.
type SettingsResponse struct {
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency"`
}

// SettingsFromDomain converts domain settings to response.
func SettingsFromDomain(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		InitialBalance: s.InitialBalance,
		Currency:       s.Currency,
	}
}

// SaveMonthResponse reports a month save.
type SaveMonthResponse struct {
	Year     int `json:"year"`
	Month    int `json:"month"`
	Upserted int `json:"upserted"`
	Deleted  int `json:"deleted"`
}

// SaveMonthFromResult converts a save result to response.
func SaveMonthFromResult(year, month int, r *usecase.SaveMonthResult) *SaveMonthResponse {
	return &SaveMonthResponse{Year: year, Month: month, Upserted: r.Upserted, Deleted: r.Deleted}
}

// CopyBudgetsResponse reports a budget copy.
type CopyBudgetsResponse struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Source string `json:"source"`
	Copied int    `json:"copied"`
}

// ClearMonthResponse reports a month clear.
type ClearMonthResponse struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	Mode           string `json:"mode"`
	ActualsDeleted int64  `json:"actuals_deleted"`
	BudgetsDeleted int64  `json:"budgets_deleted"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
