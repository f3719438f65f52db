package finance

import (
	"testing"

	"clinic-manager/internal/models"

	"github.com/stretchr/testify/assert"
)

func entry(id string, date models.CivilDate, amount float64) Entry {
	return Entry{ID: id, Date: date, Amount: models.MoneyFromFloat(amount)}
}

func TestFilterByWindowInclusiveBounds(t *testing.T) {
	w := ResolveWindow(PeriodCustom, CustomRange{
		From: models.NewCivilDate(2024, 5, 10),
		To:   models.NewCivilDate(2024, 5, 20),
	}, wednesday)

	entries := []Entry{
		entry("before", models.NewCivilDate(2024, 5, 9), 1),
		entry("start", models.NewCivilDate(2024, 5, 10), 1),
		entry("mid", models.NewCivilDate(2024, 5, 15), 1),
		entry("end", models.NewCivilDate(2024, 5, 20), 1),
		entry("after", models.NewCivilDate(2024, 5, 21), 1),
	}

	got := FilterByWindow(entries, w)
	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"start", "mid", "end"}, ids)
}

func TestFilterByWindowDropsInvalidDates(t *testing.T) {
	w := ResolveWindow(PeriodThisYear, CustomRange{}, wednesday)
	entries := []Entry{
		entry("ok", wednesday, 1),
		entry("missing", models.CivilDate{}, 1),
		entry("bogus", models.NewCivilDate(2024, 2, 30), 1),
	}
	got := FilterByWindow(entries, w)
	assert.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestFilterByWindowUnboundedReturnsEverything(t *testing.T) {
	entries := []Entry{
		entry("a", models.NewCivilDate(1999, 1, 1), 1),
		entry("b", models.CivilDate{}, 1),
	}
	got := FilterByWindow(entries, Window{Kind: WindowUnbounded})
	assert.Equal(t, entries, got)
}

func TestFilterByWindowEmptyMatchesNothing(t *testing.T) {
	entries := []Entry{entry("a", wednesday, 1)}
	assert.Empty(t, FilterByWindow(entries, Window{Kind: WindowEmpty}))
}

func TestEntriesOn(t *testing.T) {
	day := models.NewCivilDate(2024, 5, 15)
	entries := []Entry{
		entry("hit", day, 1),
		entry("other", models.NewCivilDate(2024, 5, 16), 1),
		entry("nodate", models.CivilDate{}, 1),
	}
	got := EntriesOn(entries, day)
	assert.Len(t, got, 1)
	assert.Equal(t, "hit", got[0].ID)
}

func TestSameDayInvalidNeverMatches(t *testing.T) {
	assert.False(t, SameDay(models.CivilDate{}, models.CivilDate{}))
	assert.False(t, SameDay(wednesday, models.CivilDate{}))
	assert.True(t, SameDay(wednesday, models.NewCivilDate(2024, 5, 15)))
}

func TestAppointmentsOn(t *testing.T) {
	day := models.NewCivilDate(2024, 5, 15)
	apps := []models.AppointmentView{
		{Appointment: models.Appointment{ID: 1, Date: day}},
		{Appointment: models.Appointment{ID: 2, Date: day.AddDays(1)}},
	}
	got := AppointmentsOn(apps, day)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
