// Package calendar implements the timezone-naive calendar arithmetic behind the date
// picker: coercing typed text into a day, formatting days with dayjs-style tokens and
// generating week-aligned month grids.
package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// KeyLayout is the canonical value layout, "YYYY-MM-DD".
const KeyLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for year, month and day, normalizing overflow the way
// time.Date does (e.g. April 31 becomes May 1).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the day t falls on in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseKey parses a canonical "YYYY-MM-DD" value.
func ParseKey(key string) (Date, error) {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return Date{}, err
	}
	return FromTime(t), nil
}

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	return d.Day <= int(datetime.DaysInMonth(d.Year, datetime.Month(d.Month)))
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Key returns the canonical "YYYY-MM-DD" form.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) String() string {
	return d.Key()
}

// Time returns midnight of d in UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// MonthStart returns the first day of the given month.
func MonthStart(year int, month time.Month) Date {
	return New(year, month, 1)
}

// AddMonths moves (year, month) by n months, carrying into the year.
func AddMonths(year int, month time.Month, n int) (int, time.Month) {
	d := MonthStart(year, month).Time().AddDate(0, n, 0)
	return d.Year(), d.Month()
}

// Clock supplies the viewer's current local time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports t. Useful in tests.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Today returns the local calendar day according to clock.
func Today(clock Clock) Date {
	if clock == nil {
		clock = SystemClock
	}
	return FromTime(clock.Now().Local())
}
