package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTrend_Format(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		places   int32
		wantKind TrendKind
		want     string
	}{
		{name: "both zero is absent", current: "0", previous: "0", wantKind: TrendNone, want: ""},
		{name: "previous zero is new", current: "100", previous: "0", wantKind: TrendNew, want: "new"},
		{name: "negative from zero is new", current: "-5", previous: "0", wantKind: TrendNew, want: "new"},
		{name: "ten percent up", current: "110", previous: "100", wantKind: TrendValue, want: "+10%"},
		{name: "ten percent down", current: "90", previous: "100", wantKind: TrendValue, want: "-10%"},
		{name: "unchanged", current: "100", previous: "100", wantKind: TrendValue, want: "0%"},
		{name: "one decimal", current: "105.5", previous: "100", places: 1, wantKind: TrendValue, want: "+5.5%"},
		{name: "one decimal whole", current: "110", previous: "100", places: 1, wantKind: TrendValue, want: "+10.0%"},
		{name: "rounding a third", current: "4", previous: "3", wantKind: TrendValue, want: "+33%"},
		{name: "negative previous uses magnitude", current: "-50", previous: "-100", wantKind: TrendValue, want: "+50%"},
		{name: "worse negative", current: "-150", previous: "-100", wantKind: TrendValue, want: "-50%"},
		{name: "down to zero", current: "0", previous: "200", wantKind: TrendValue, want: "-100%"},
		{name: "tiny rise rounds to plus zero", current: "100.2", previous: "100", wantKind: TrendValue, want: "+0%"},
		{name: "tiny drop keeps sign", current: "99.8", previous: "100", wantKind: TrendValue, want: "-0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := CalculateTrend(dec(tt.current), dec(tt.previous))
			assert.Equal(t, tt.wantKind, trend.Kind)
			assert.Equal(t, tt.want, trend.Format(tt.places))
		})
	}
}

func TestCalculateTrend_UnroundedValue(t *testing.T) {
	trend := CalculateTrend(dec("4"), dec("3"))

	assert.Equal(t, TrendValue, trend.Kind)
	assertDecimal(t, "33.3333333333333333", trend.Percent)
}

func TestTrend_SortValue(t *testing.T) {
	assertDecimal(t, "0", CalculateTrend(dec("0"), dec("0")).SortValue())
	assertDecimal(t, "100", CalculateTrend(dec("5"), dec("0")).SortValue())
	assertDecimal(t, "-25", CalculateTrend(dec("75"), dec("100")).SortValue())
}

func TestFavorable(t *testing.T) {
	up := CalculateTrend(dec("110"), dec("100"))
	down := CalculateTrend(dec("90"), dec("100"))
	flat := CalculateTrend(dec("100"), dec("100"))
	fresh := CalculateTrend(dec("100"), dec("0"))

	assert.True(t, Favorable(MetricIncome, up))
	assert.False(t, Favorable(MetricIncome, down))
	assert.True(t, Favorable(MetricInvestments, up))
	assert.True(t, Favorable(MetricExpenses, down))
	assert.False(t, Favorable(MetricExpenses, up))
	assert.False(t, Favorable(MetricIncome, flat))
	assert.False(t, Favorable(MetricIncome, fresh))

	// Net: a growing surplus and a shrinking deficit are both favorable.
	assert.True(t, Favorable(MetricNet, CalculateTrend(dec("300"), dec("200"))))
	assert.True(t, Favorable(MetricNet, CalculateTrend(dec("-50"), dec("-200"))))
	assert.False(t, Favorable(MetricNet, CalculateTrend(dec("-300"), dec("-200"))))
	assert.False(t, Favorable(MetricNet, CalculateTrend(dec("-10"), dec("200"))))
}

func TestMetricForType(t *testing.T) {
	assert.Equal(t, MetricIncome, MetricForType(CategoryIncome))
	assert.Equal(t, MetricExpenses, MetricForType(CategoryExpense))
	assert.Equal(t, MetricInvestments, MetricForType(CategoryInvestment))
	assert.Equal(t, Metric(""), MetricForType(CategoryOther))
}
