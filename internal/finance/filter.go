// internal/finance/filter.go
package finance

import (
	"clinic-manager/internal/models"
)

// FilterByWindow returns the entries whose date falls inside the window,
// boundary days included. Entries with missing or invalid dates are treated
// as unmatched and dropped, never an error. An unbounded window returns the
// input unfiltered.
func FilterByWindow(entries []Entry, w Window) []Entry {
	if w.Kind == WindowUnbounded {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// SameDay reports whether two dates name the same calendar day. Invalid dates
// match nothing, including each other.
func SameDay(a, b models.CivilDate) bool {
	return a.Valid() && b.Valid() && a.Equal(b)
}

// EntriesOn returns the entries dated exactly on day, for the calendar
// detail panel.
func EntriesOn(entries []Entry, day models.CivilDate) []Entry {
	out := make([]Entry, 0)
	for _, e := range entries {
		if SameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// AppointmentsOn returns the appointments falling on day, regardless of
// time-of-day.
func AppointmentsOn(appointments []models.AppointmentView, day models.CivilDate) []models.AppointmentView {
	out := make([]models.AppointmentView, 0)
	for _, a := range appointments {
		if SameDay(a.Date, day) {
			out = append(out, a)
		}
	}
	return out
}
