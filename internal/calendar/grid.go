package calendar

import (
	"time"
)

// Day is a single cell of a month grid.
type Day struct {
	Date       Date
	Key        string
	InMonth    bool
	IsToday    bool
	IsSelected bool
}

// Week is one row of a month grid.
type Week [7]Day

// MonthLabels are the short month names shown in the month view.
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthLabel returns the short label for m.
func MonthLabel(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return MonthLabels[m-1]
}

// WeekdayInitials returns the single-letter column headers starting at weekStart.
func WeekdayInitials(weekStart time.Weekday) [7]string {
	var out [7]string
	for i := range out {
		out[i] = ((weekStart + time.Weekday(i)) % 7).String()[:1]
	}
	return out
}

type gridConfig struct {
	weekStart time.Weekday
	clock     Clock
}

// GridOption customizes GenerateWeeks.
type GridOption func(*gridConfig)

// WithWeekStart sets the first column of every week. Defaults to Sunday.
func WithWeekStart(day time.Weekday) GridOption {
	return func(c *gridConfig) {
		c.weekStart = day % 7
	}
}

// WithClock sets the clock used to flag today. Defaults to SystemClock.
func WithClock(clock Clock) GridOption {
	return func(c *gridConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// GenerateWeeks builds the grid for month of year. The grid starts on the first day of
// the week containing the 1st and ends on the last day of the week containing the
// month's last day, so every row is complete. Today is read from the clock on every
// call. A selected value that cannot be coerced marks no cell.
func GenerateWeeks(year int, month time.Month, selected string, opts ...GridOption) []Week {
	cfg := gridConfig{weekStart: time.Sunday, clock: SystemClock}
	for _, opt := range opts {
		opt(&cfg)
	}

	today := Today(cfg.clock)

	var (
		sel    Date
		hasSel bool
	)
	if selected != "" {
		if d, err := Coerce(selected, ""); err == nil {
			sel, hasSel = d, true
		}
	}

	first := MonthStart(year, month)
	last := first.AddDays(daysIn(first) - 1)
	start := first.AddDays(-offsetFromWeekStart(first.Weekday(), cfg.weekStart))
	end := last.AddDays(6 - offsetFromWeekStart(last.Weekday(), cfg.weekStart))

	var weeks []Week
	var week Week
	col := 0
	for d := start; !end.Before(d); d = d.AddDays(1) {
		week[col] = Day{
			Date:       d,
			Key:        d.Key(),
			InMonth:    d.Month == first.Month && d.Year == first.Year,
			IsToday:    d == today,
			IsSelected: hasSel && d == sel,
		}
		col++
		if col == len(week) {
			weeks = append(weeks, week)
			week = Week{}
			col = 0
		}
	}
	return weeks
}

// YearRange returns the twelve-year block containing year, starting at year - year%12.
func YearRange(year int) [12]int {
	var out [12]int
	start := year - year%12
	for i := range out {
		out[i] = start + i
	}
	return out
}

func daysIn(first Date) int {
	return first.Time().AddDate(0, 1, -1).Day()
}

func offsetFromWeekStart(day, weekStart time.Weekday) int {
	return (int(day) - int(weekStart) + 7) % 7
}
