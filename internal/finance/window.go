// internal/finance/window.go
package finance

import (
	"clinic-manager/internal/models"
)

// Period is a named date-range selector from the dashboard filter.
type Period string

const (
	PeriodToday       Period = "Today"
	PeriodThisWeek    Period = "This Week"
	PeriodThisMonth   Period = "This Month"
	PeriodThisQuarter Period = "This Quarter"
	PeriodThisYear    Period = "This Year"
	PeriodCustom      Period = "Custom Date Range"
)

type WindowKind int

const (
	// WindowResolved has concrete inclusive Start/End bounds.
	WindowResolved WindowKind = iota
	// WindowUnbounded means "do not filter": a custom range with a missing
	// bound. Distinct from an empty window.
	WindowUnbounded
	// WindowEmpty matches nothing: a custom range whose from is after its to.
	WindowEmpty
)

// Window is the resolved form of a period filter. Start and End are inclusive
// calendar days; they are only meaningful for WindowResolved.
type Window struct {
	Kind  WindowKind
	Start models.CivilDate
	End   models.CivilDate
}

// CustomRange carries the explicit bounds for PeriodCustom. A zero bound
// counts as missing.
type CustomRange struct {
	From models.CivilDate
	To   models.CivilDate
}

// ResolveWindow expands a period token into concrete day-granularity bounds
// relative to today. An unrecognized token gets This Month semantics.
func ResolveWindow(p Period, custom CustomRange, today models.CivilDate) Window {
	switch p {
	case PeriodToday:
		return resolved(today, today)
	case PeriodThisWeek:
		// Monday-start week: Sunday counts as day 7 of the prior week.
		monday := today.AddDays(-((int(today.Weekday()) + 6) % 7))
		return resolved(monday, monday.AddDays(6))
	case PeriodThisQuarter:
		startMonth := ((today.Month-1)/3)*3 + 1
		start := models.NewCivilDate(today.Year, startMonth, 1)
		return resolved(start, lastDayOfMonth(today.Year, startMonth+2))
	case PeriodThisYear:
		return resolved(models.NewCivilDate(today.Year, 1, 1), models.NewCivilDate(today.Year, 12, 31))
	case PeriodCustom:
		if custom.From.IsZero() || custom.To.IsZero() {
			return Window{Kind: WindowUnbounded}
		}
		if custom.From.After(custom.To) {
			return Window{Kind: WindowEmpty}
		}
		return resolved(custom.From, custom.To)
	case PeriodThisMonth:
	default:
		// fall through to This Month
	}
	start := models.NewCivilDate(today.Year, today.Month, 1)
	return resolved(start, lastDayOfMonth(today.Year, today.Month))
}

func resolved(start, end models.CivilDate) Window {
	return Window{Kind: WindowResolved, Start: start, End: end}
}

func lastDayOfMonth(year, month int) models.CivilDate {
	// Month may be >12 here (quarter arithmetic); day 0 of month+1 normalizes.
	return models.CivilDateOf(models.NewCivilDate(year, month+1, 1).Time().AddDate(0, 0, -1))
}

// Contains reports whether the calendar day d falls inside the window.
// Invalid dates never match.
func (w Window) Contains(d models.CivilDate) bool {
	if !d.Valid() {
		return false
	}
	switch w.Kind {
	case WindowUnbounded:
		return true
	case WindowEmpty:
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}

// SpanDays returns the inclusive day count of a resolved window, 0 otherwise.
func (w Window) SpanDays() int {
	if w.Kind != WindowResolved {
		return 0
	}
	return int(w.End.Time().Sub(w.Start.Time()).Hours()/24) + 1
}
