package finance

import (
	"testing"

	"clinic-manager/internal/models"

	"github.com/stretchr/testify/assert"
)

// 2024-05-15 is a Wednesday.
var wednesday = models.NewCivilDate(2024, 5, 15)

func TestResolveWindowToday(t *testing.T) {
	w := ResolveWindow(PeriodToday, CustomRange{}, wednesday)
	assert.Equal(t, WindowResolved, w.Kind)
	assert.Equal(t, wednesday, w.Start)
	assert.Equal(t, wednesday, w.End)
}

func TestResolveWindowThisWeekMondayAnchor(t *testing.T) {
	monday := models.NewCivilDate(2024, 5, 13)
	sunday := models.NewCivilDate(2024, 5, 19)

	// Every day of the week resolves to the same Monday..Sunday span,
	// including Sunday itself, which belongs to the week that started the
	// previous Monday.
	for i := 0; i < 7; i++ {
		today := monday.AddDays(i)
		w := ResolveWindow(PeriodThisWeek, CustomRange{}, today)
		assert.Equal(t, monday, w.Start, "today=%s", today)
		assert.Equal(t, sunday, w.End, "today=%s", today)
	}
}

func TestResolveWindowThisWeekAcrossMonthBoundary(t *testing.T) {
	// 2024-06-01 is a Saturday; its week started Monday 2024-05-27.
	w := ResolveWindow(PeriodThisWeek, CustomRange{}, models.NewCivilDate(2024, 6, 1))
	assert.Equal(t, models.NewCivilDate(2024, 5, 27), w.Start)
	assert.Equal(t, models.NewCivilDate(2024, 6, 2), w.End)
}

func TestResolveWindowThisMonth(t *testing.T) {
	w := ResolveWindow(PeriodThisMonth, CustomRange{}, wednesday)
	assert.Equal(t, models.NewCivilDate(2024, 5, 1), w.Start)
	assert.Equal(t, models.NewCivilDate(2024, 5, 31), w.End)

	// February of a leap year.
	w = ResolveWindow(PeriodThisMonth, CustomRange{}, models.NewCivilDate(2024, 2, 10))
	assert.Equal(t, models.NewCivilDate(2024, 2, 29), w.End)
}

func TestResolveWindowThisQuarter(t *testing.T) {
	cases := []struct {
		today      models.CivilDate
		start, end models.CivilDate
	}{
		{models.NewCivilDate(2024, 2, 10), models.NewCivilDate(2024, 1, 1), models.NewCivilDate(2024, 3, 31)},
		{wednesday, models.NewCivilDate(2024, 4, 1), models.NewCivilDate(2024, 6, 30)},
		{models.NewCivilDate(2024, 7, 1), models.NewCivilDate(2024, 7, 1), models.NewCivilDate(2024, 9, 30)},
		{models.NewCivilDate(2024, 11, 30), models.NewCivilDate(2024, 10, 1), models.NewCivilDate(2024, 12, 31)},
	}
	for _, tc := range cases {
		w := ResolveWindow(PeriodThisQuarter, CustomRange{}, tc.today)
		assert.Equal(t, tc.start, w.Start, "today=%s", tc.today)
		assert.Equal(t, tc.end, w.End, "today=%s", tc.today)
	}
}

func TestResolveWindowThisYear(t *testing.T) {
	w := ResolveWindow(PeriodThisYear, CustomRange{}, wednesday)
	assert.Equal(t, models.NewCivilDate(2024, 1, 1), w.Start)
	assert.Equal(t, models.NewCivilDate(2024, 12, 31), w.End)
}

func TestResolveWindowUnknownTokenDefaultsToThisMonth(t *testing.T) {
	w := ResolveWindow(Period("Last Fortnight"), CustomRange{}, wednesday)
	assert.Equal(t, ResolveWindow(PeriodThisMonth, CustomRange{}, wednesday), w)
}

func TestResolveWindowCustom(t *testing.T) {
	from := models.NewCivilDate(2024, 3, 10)
	to := models.NewCivilDate(2024, 4, 20)
	w := ResolveWindow(PeriodCustom, CustomRange{From: from, To: to}, wednesday)
	assert.Equal(t, WindowResolved, w.Kind)
	assert.Equal(t, from, w.Start)
	assert.Equal(t, to, w.End)
}

func TestResolveWindowCustomMissingBoundIsUnbounded(t *testing.T) {
	w := ResolveWindow(PeriodCustom, CustomRange{From: wednesday}, wednesday)
	assert.Equal(t, WindowUnbounded, w.Kind)

	w = ResolveWindow(PeriodCustom, CustomRange{To: wednesday}, wednesday)
	assert.Equal(t, WindowUnbounded, w.Kind)

	w = ResolveWindow(PeriodCustom, CustomRange{}, wednesday)
	assert.Equal(t, WindowUnbounded, w.Kind)
}

func TestResolveWindowCustomInvertedIsEmpty(t *testing.T) {
	w := ResolveWindow(PeriodCustom, CustomRange{
		From: models.NewCivilDate(2024, 5, 20),
		To:   models.NewCivilDate(2024, 5, 10),
	}, wednesday)
	assert.Equal(t, WindowEmpty, w.Kind)
	assert.False(t, w.Contains(wednesday))
}

func TestWindowContainsBoundariesInclusive(t *testing.T) {
	w := ResolveWindow(PeriodCustom, CustomRange{
		From: models.NewCivilDate(2024, 5, 10),
		To:   models.NewCivilDate(2024, 5, 20),
	}, wednesday)

	assert.True(t, w.Contains(models.NewCivilDate(2024, 5, 10)))
	assert.True(t, w.Contains(models.NewCivilDate(2024, 5, 20)))
	assert.False(t, w.Contains(models.NewCivilDate(2024, 5, 9)))
	assert.False(t, w.Contains(models.NewCivilDate(2024, 5, 21)))
}

func TestWindowContainsInvalidDateNeverMatches(t *testing.T) {
	resolved := ResolveWindow(PeriodThisYear, CustomRange{}, wednesday)
	assert.False(t, resolved.Contains(models.CivilDate{}))
	assert.False(t, resolved.Contains(models.NewCivilDate(2024, 13, 1)))

	unbounded := Window{Kind: WindowUnbounded}
	assert.False(t, unbounded.Contains(models.CivilDate{}))
}

func TestWindowSpanDays(t *testing.T) {
	w := ResolveWindow(PeriodToday, CustomRange{}, wednesday)
	assert.Equal(t, 1, w.SpanDays())

	w = ResolveWindow(PeriodThisWeek, CustomRange{}, wednesday)
	assert.Equal(t, 7, w.SpanDays())

	assert.Equal(t, 0, Window{Kind: WindowUnbounded}.SpanDays())
}
