package domain

import "github.com/shopspring/decimal"

var maxFillPercent = decimal.NewFromInt(150)

// Progress describes how a period actual compares with its plan.
type Progress struct {
	FillPercent decimal.Decimal
	OverBudget  bool
	OnTrack     bool
}

// EvaluateProgress compares actual against plan for a dashboard metric.
// For income and investments OverBudget means the target was missed; for
// expenses it means the plan was exceeded.
func EvaluateProgress(metric Metric, plan, actual decimal.Decimal) Progress {
	one := decimal.NewFromInt(1)

	if metric == MetricNet {
		if !actual.IsNegative() {
			denom := decimal.Max(actual, plan, one)
			return Progress{
				FillPercent: fill(actual, denom),
				OnTrack:     true,
			}
		}
		denom := decimal.Max(actual.Abs(), plan.Abs(), one)
		return Progress{FillPercent: fill(actual.Abs(), denom)}
	}

	isExpense := metric == MetricExpenses

	if !plan.IsPositive() {
		p := Progress{OnTrack: true, FillPercent: decimal.Zero}
		if actual.IsPositive() {
			p.FillPercent = hundred
			if isExpense {
				p.OverBudget = true
				p.OnTrack = false
			}
		}
		return p
	}

	p := Progress{FillPercent: decimal.Min(fill(actual, plan), maxFillPercent)}
	if isExpense {
		p.OverBudget = actual.GreaterThan(plan)
	} else {
		p.OverBudget = actual.LessThan(plan)
	}
	p.OnTrack = !p.OverBudget
	return p
}

func fill(value, denom decimal.Decimal) decimal.Decimal {
	return value.Mul(hundred).DivRound(denom, 1)
}
