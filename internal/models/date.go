// internal/models/date.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CivilDate is a timezone-naive calendar day. Comparisons are always at day
// granularity, never by instant. The zero value means "no date" and never
// matches a range or another date.
type CivilDate struct {
	Year  int
	Month int // 1-12
	Day   int
}

func NewCivilDate(year, month, day int) CivilDate {
	return CivilDate{Year: year, Month: month, Day: day}
}

// CivilDateOf truncates t to its calendar day.
func CivilDateOf(t time.Time) CivilDate {
	return CivilDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseCivilDate parses "YYYY-MM-DD". Longer ISO datetime strings are accepted
// by reading only the date portion.
func ParseCivilDate(s string) (CivilDate, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, err
	}
	return CivilDateOf(t), nil
}

func (d CivilDate) IsZero() bool {
	return d == CivilDate{}
}

// Valid reports whether d names a real calendar day.
func (d CivilDate) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= daysInMonth(d.Year, d.Month)
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MonthKey returns the zero-padded "YYYY-MM" bucket key.
func (d CivilDate) MonthKey() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// Time returns midnight UTC of the day. Only used for calendar arithmetic; the
// instant itself is never compared.
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CivilDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDateOf(d.Time().AddDate(0, 0, n))
}

func (d CivilDate) Equal(o CivilDate) bool {
	return d == o
}

func (d CivilDate) Before(o CivilDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d CivilDate) After(o CivilDate) bool {
	return o.Before(d)
}

// UnmarshalJSON accepts the two encodings the backend has historically emitted
// for dates: an ISO string ("2024-12-25") and a numeric [year, month, day]
// array with a 1-indexed month. Anything unparseable decodes to the zero value
// rather than failing the surrounding record; callers that require a date must
// check Valid themselves.
func (d *CivilDate) UnmarshalJSON(data []byte) error {
	*d = CivilDate{}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			return nil
		}
		if parsed, err := ParseCivilDate(s); err == nil {
			*d = parsed
		}
		return nil
	}

	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		if len(arr) == 3 {
			cd := NewCivilDate(arr[0], arr[1], arr[2])
			if cd.Valid() {
				*d = cd
			}
		}
		return nil
	}

	// null, objects, etc. all coerce to "no date"
	return nil
}

func (d CivilDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d CivilDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *CivilDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = CivilDate{}
		return nil
	case time.Time:
		*d = CivilDateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into CivilDate", src)
	}
}

func (d *CivilDate) scanString(s string) error {
	if s == "" {
		*d = CivilDate{}
		return nil
	}
	parsed, err := ParseCivilDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
