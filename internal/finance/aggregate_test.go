package finance

import (
	"sort"
	"testing"

	"clinic-manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupingForShortPeriodsAreDaily(t *testing.T) {
	for _, p := range []Period{PeriodToday, PeriodThisWeek, PeriodThisMonth} {
		w := ResolveWindow(p, CustomRange{}, wednesday)
		assert.Equal(t, GroupDaily, GroupingFor(p, w), string(p))
	}
}

func TestGroupingForLongPeriodsAreMonthly(t *testing.T) {
	for _, p := range []Period{PeriodThisQuarter, PeriodThisYear} {
		w := ResolveWindow(p, CustomRange{}, wednesday)
		assert.Equal(t, GroupMonthly, GroupingFor(p, w), string(p))
	}
}

func TestGroupingForNarrowCustomRangeIsDaily(t *testing.T) {
	// 32 days inclusive
	w := ResolveWindow(PeriodCustom, CustomRange{
		From: models.NewCivilDate(2024, 5, 1),
		To:   models.NewCivilDate(2024, 6, 1),
	}, wednesday)
	require.Equal(t, 32, w.SpanDays())
	assert.Equal(t, GroupDaily, GroupingFor(PeriodCustom, w))

	// 33 days tips over to monthly
	w = ResolveWindow(PeriodCustom, CustomRange{
		From: models.NewCivilDate(2024, 5, 1),
		To:   models.NewCivilDate(2024, 6, 2),
	}, wednesday)
	assert.Equal(t, GroupMonthly, GroupingFor(PeriodCustom, w))
}

func TestGroupingForUnboundedCustomIsMonthly(t *testing.T) {
	w := ResolveWindow(PeriodCustom, CustomRange{}, wednesday)
	assert.Equal(t, GroupMonthly, GroupingFor(PeriodCustom, w))
}

func TestBucketSeriesDaily(t *testing.T) {
	revenue := []Entry{
		entry("r1", models.NewCivilDate(2024, 5, 1), 300),
		entry("r2", models.NewCivilDate(2024, 5, 1), 200),
		entry("r3", models.NewCivilDate(2024, 5, 3), 100),
	}
	expenses := []Entry{
		entry("e1", models.NewCivilDate(2024, 5, 1), 50),
	}

	series := BucketSeries(revenue, expenses, GroupDaily)
	require.Len(t, series, 2)

	assert.Equal(t, "2024-05-01", series[0].Label)
	assert.Equal(t, "500", series[0].Revenue.Decimal.String())
	assert.Equal(t, "50", series[0].Expenses.Decimal.String())

	assert.Equal(t, "2024-05-03", series[1].Label)
	assert.Equal(t, "100", series[1].Revenue.Decimal.String())
	assert.True(t, series[1].Expenses.IsZero())
}

func TestBucketSeriesMonthlyCollapsesDays(t *testing.T) {
	revenue := []Entry{
		entry("r1", models.NewCivilDate(2024, 1, 5), 100),
		entry("r2", models.NewCivilDate(2024, 1, 28), 150),
		entry("r3", models.NewCivilDate(2024, 3, 2), 75),
	}
	series := BucketSeries(revenue, nil, GroupMonthly)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01", series[0].Label)
	assert.Equal(t, "250", series[0].Revenue.Decimal.String())
	assert.Equal(t, "2024-03", series[1].Label)
}

func TestBucketSeriesOrderIsChronological(t *testing.T) {
	revenue := []Entry{
		entry("dec", models.NewCivilDate(2023, 12, 30), 1),
		entry("jan", models.NewCivilDate(2024, 1, 2), 1),
		entry("feb", models.NewCivilDate(2024, 2, 9), 1),
	}
	series := BucketSeries(revenue, nil, GroupMonthly)
	labels := make([]string, 0, len(series))
	for _, b := range series {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"}, labels)
	assert.True(t, sort.StringsAreSorted(labels))
}

func TestBucketSeriesSkipsInvalidDates(t *testing.T) {
	revenue := []Entry{
		entry("ok", models.NewCivilDate(2024, 5, 1), 10),
		entry("bad", models.CivilDate{}, 999),
	}
	series := BucketSeries(revenue, nil, GroupDaily)
	require.Len(t, series, 1)
	assert.Equal(t, "10", series[0].Revenue.Decimal.String())
}

func TestChartSeriesBucketsSumToSummaryTotals(t *testing.T) {
	revenue := []Entry{
		entry("r1", models.NewCivilDate(2024, 5, 2), 300.50),
		entry("r2", models.NewCivilDate(2024, 5, 2), 199.50),
		entry("r3", models.NewCivilDate(2024, 5, 28), 1000),
		entry("out", models.NewCivilDate(2024, 4, 30), 5000),
	}
	expenses := []Entry{
		entry("e1", models.NewCivilDate(2024, 5, 10), 120),
		entry("e2", models.NewCivilDate(2024, 5, 10), 80),
	}

	series := ChartSeries(revenue, expenses, PeriodThisMonth, CustomRange{}, wednesday)
	summary := Summarize(revenue, expenses, PeriodThisMonth, CustomRange{}, wednesday)

	var rev, exp models.Money
	for _, b := range series {
		rev = rev.Add(b.Revenue)
		exp = exp.Add(b.Expenses)
	}
	assert.True(t, rev.Decimal.Equal(summary.TotalRevenue.Decimal))
	assert.True(t, exp.Decimal.Equal(summary.TotalExpenses.Decimal))
	assert.Equal(t, "1500", summary.TotalRevenue.Decimal.String())
	assert.Equal(t, "200", summary.TotalExpenses.Decimal.String())
	assert.Equal(t, "1300", summary.NetProfit.Decimal.String())
}

func TestSummarizeUnboundedCustomCountsEverything(t *testing.T) {
	revenue := []Entry{
		entry("old", models.NewCivilDate(2019, 1, 1), 100),
		entry("new", wednesday, 50),
	}
	s := Summarize(revenue, nil, PeriodCustom, CustomRange{}, wednesday)
	assert.Equal(t, "150", s.TotalRevenue.Decimal.String())
}

func TestSummarizeEmptyWindowIsZero(t *testing.T) {
	revenue := []Entry{entry("r", wednesday, 100)}
	s := Summarize(revenue, nil, PeriodCustom, CustomRange{
		From: models.NewCivilDate(2024, 6, 1),
		To:   models.NewCivilDate(2024, 5, 1),
	}, wednesday)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.NetProfit.IsZero())
}

func TestTotalIgnoresNothingButSumsZeros(t *testing.T) {
	entries := []Entry{
		entry("a", wednesday, 10),
		{ID: "zeroed", Date: wednesday}, // bad amount decoded to zero upstream
	}
	assert.Equal(t, "10", Total(entries).Decimal.String())
}
