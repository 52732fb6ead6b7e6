package domain

import "github.com/shopspring/decimal"

// TrendKind distinguishes a numeric trend from the two sentinels.
type TrendKind int

const (
	// TrendNone means there is nothing to show: both values are zero.
	TrendNone TrendKind = iota
	// TrendNew means the previous value was zero, so growth is undefined.
	TrendNew
	// TrendValue means Percent holds the change.
	TrendValue
)

var hundred = decimal.NewFromInt(100)

// trendDivisionPrecision is the number of decimal places kept when dividing.
const trendDivisionPrecision = 16

// Trend is the percentage change of a metric between two periods.
type Trend struct {
	Kind    TrendKind
	Percent decimal.Decimal
}

// CalculateTrend returns the change from previous to current, relative to
// the magnitude of previous.
func CalculateTrend(current, previous decimal.Decimal) Trend {
	if previous.IsZero() {
		if current.IsZero() {
			return Trend{Kind: TrendNone}
		}
		return Trend{Kind: TrendNew}
	}

	pct := current.Sub(previous).Mul(hundred).DivRound(previous.Abs(), trendDivisionPrecision)
	return Trend{Kind: TrendValue, Percent: pct}
}

// Format renders the trend with the given number of decimal places:
// "" for none, "new", "0%", or a signed value such as "+12%" or "-3.5%".
func (t Trend) Format(places int32) string {
	switch t.Kind {
	case TrendNone:
		return ""
	case TrendNew:
		return "new"
	}

	if t.Percent.IsZero() {
		return "0%"
	}

	rounded := t.Percent.Round(places)
	s := rounded.StringFixed(places)
	switch {
	case !t.Percent.IsNegative():
		s = "+" + s
	case rounded.IsZero():
		s = "-" + s
	}
	return s + "%"
}

// SortValue is the numeric value used when ordering by trend. A new trend
// counts as +100%.
func (t Trend) SortValue() decimal.Decimal {
	switch t.Kind {
	case TrendNew:
		return hundred
	case TrendValue:
		return t.Percent
	default:
		return decimal.Zero
	}
}

// Metric names a dashboard figure.
type Metric string

const (
	MetricIncome      Metric = "income"
	MetricExpenses    Metric = "expenses"
	MetricInvestments Metric = "investments"
	MetricNet         Metric = "net"
)

// MetricForType maps a category type to its metric.
func MetricForType(t CategoryType) Metric {
	switch t {
	case CategoryIncome:
		return MetricIncome
	case CategoryExpense:
		return MetricExpenses
	case CategoryInvestment:
		return MetricInvestments
	default:
		return ""
	}
}

// Favorable reports whether a trend is good news for the metric. Rising
// income and investments are favorable, falling expenses are. Net is
// favorable when it rises: either growing while non-negative or moving back
// toward zero while negative. Sentinel trends are neutral.
func Favorable(metric Metric, trend Trend) bool {
	if trend.Kind != TrendValue || trend.Percent.IsZero() {
		return false
	}

	switch metric {
	case MetricIncome, MetricInvestments, MetricNet:
		return trend.Percent.IsPositive()
	case MetricExpenses:
		return trend.Percent.IsNegative()
	default:
		return false
	}
}
