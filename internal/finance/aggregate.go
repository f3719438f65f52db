// internal/finance/aggregate.go
package finance

import (
	"sort"

	"clinic-manager/internal/models"
)

type Grouping int

const (
	GroupDaily Grouping = iota
	GroupMonthly
)

// Bucket is one aggregation cell of the chart: revenue and expense totals
// keyed by a zero-padded day ("2024-05-01") or month ("2024-05") label.
type Bucket struct {
	Label    string       `json:"label"`
	Revenue  models.Money `json:"revenue"`
	Expenses models.Money `json:"expenses"`
}

// GroupingFor decides the bucket resolution. Short periods group by day; a
// narrow custom range (≤ 32 days) also gets daily resolution even though its
// token alone would imply monthly grouping.
func GroupingFor(p Period, w Window) Grouping {
	switch p {
	case PeriodToday, PeriodThisWeek, PeriodThisMonth:
		return GroupDaily
	}
	if w.Kind == WindowResolved && w.SpanDays() <= 32 {
		return GroupDaily
	}
	return GroupMonthly
}

// BucketSeries buckets already-filtered revenue and expense entries and
// returns the series sorted ascending by label. The zero-padded keys make the
// lexicographic order chronological. Entries without a valid date are
// skipped.
func BucketSeries(revenue, expenses []Entry, g Grouping) []Bucket {
	buckets := make(map[string]*Bucket)

	accumulate := func(entries []Entry, expense bool) {
		for _, e := range entries {
			if !e.Date.Valid() {
				continue
			}
			key := e.Date.String()
			if g == GroupMonthly {
				key = e.Date.MonthKey()
			}
			b, ok := buckets[key]
			if !ok {
				b = &Bucket{Label: key}
				buckets[key] = b
			}
			if expense {
				b.Expenses = b.Expenses.Add(e.Amount)
			} else {
				b.Revenue = b.Revenue.Add(e.Amount)
			}
		}
	}
	accumulate(revenue, false)
	accumulate(expenses, true)

	series := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Label < series[j].Label })
	return series
}

// ChartSeries is the single entry point the chart endpoint uses: resolve the
// period, filter both streams, pick the grouping and bucket. Pure function of
// its inputs.
func ChartSeries(revenue, expenses []Entry, p Period, custom CustomRange, today models.CivilDate) []Bucket {
	w := ResolveWindow(p, custom, today)
	return BucketSeries(FilterByWindow(revenue, w), FilterByWindow(expenses, w), GroupingFor(p, w))
}

// Summary holds the period totals shown on the dashboard cards.
type Summary struct {
	TotalRevenue  models.Money `json:"totalRevenue"`
	TotalExpenses models.Money `json:"totalExpenses"`
	NetProfit     models.Money `json:"netProfit"`
}

// Summarize totals the filtered streams for a period.
func Summarize(revenue, expenses []Entry, p Period, custom CustomRange, today models.CivilDate) Summary {
	w := ResolveWindow(p, custom, today)
	totalRev := Total(FilterByWindow(revenue, w))
	totalExp := Total(FilterByWindow(expenses, w))
	return Summary{
		TotalRevenue:  totalRev,
		TotalExpenses: totalExp,
		NetProfit:     totalRev.Sub(totalExp),
	}
}

// Total sums entry amounts. Invalid amounts already decoded to zero, so they
// cannot poison the sum.
func Total(entries []Entry) models.Money {
	var sum models.Money
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}
