package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cloudeng.io/datetime"

	inkerrors "github.com/alexisbeaulieu97/inkui/pkg/errors"
)

// Layouts tried by the permissive pass, in order.
var permissiveLayouts = []string{
	KeyLayout,
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"2006.01.02",
	"2006.1.2",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"2006-01",
	"2006",
}

// Coerce interprets raw as a calendar day.
//
// A non-empty preferredFormat (dayjs tokens) is tried first and only accepted when the
// parsed day formats back to exactly the input. A format without a year takes the
// current year. Otherwise common representations are tried, including month names in
// any case. As a last resort any time-of-day suffix is stripped and the permissive pass
// runs again. Failures return *errors.InvalidDateError.
func Coerce(raw, preferredFormat string) (Date, error) {
	return CoerceAt(raw, preferredFormat, SystemClock)
}

// CoerceAt is Coerce with the current year read from clock.
func CoerceAt(raw, preferredFormat string, clock Clock) (Date, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Date{}, inkerrors.NewInvalidDateError(raw, preferredFormat, fmt.Errorf("empty input"))
	}

	if preferredFormat != "" {
		if d, ok := parseStrict(input, preferredFormat, clock); ok {
			return d, nil
		}
	}

	if d, ok := parsePermissive(input); ok {
		return d, nil
	}

	if truncated := stripTimeOfDay(input); truncated != "" && truncated != input {
		if d, ok := parsePermissive(truncated); ok {
			return d, nil
		}
	}

	return Date{}, inkerrors.NewInvalidDateError(raw, preferredFormat, nil)
}

// MustCoerce is like Coerce but panics on failure. For literals in tests and examples.
func MustCoerce(raw string) Date {
	d, err := Coerce(raw, "")
	if err != nil {
		panic(err)
	}
	return d
}

// Normalize coerces raw and returns its canonical key, or "" when it cannot be read.
func Normalize(raw, preferredFormat string) string {
	d, err := Coerce(raw, preferredFormat)
	if err != nil {
		return ""
	}
	return d.Key()
}

func parseStrict(input, format string, clock Clock) (Date, bool) {
	layout := Layout(format)
	t, err := time.Parse(layout, input)
	if err != nil {
		return Date{}, false
	}
	if t.Format(layout) != input {
		return Date{}, false
	}
	d := FromTime(t)
	if !hasYear(layout) {
		if clock == nil {
			clock = SystemClock
		}
		d.Year = Today(clock).Year
		if !d.Valid() {
			return Date{}, false
		}
	}
	return d, true
}

// hasYear reports whether a Go layout carries a year element ("2006" or "06").
func hasYear(layout string) bool {
	return strings.Contains(layout, "06")
}

func parsePermissive(input string) (Date, bool) {
	for _, layout := range permissiveLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return FromTime(t), true
		}
	}
	return parseWithMonthName(input)
}

// parseWithMonthName handles "Mar 15 2024", "15 march, 2024", "Fri Mar 15 2024" and
// similar, accepting any month name prefix of at least three letters.
func parseWithMonthName(input string) (Date, bool) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '-' || r == '/' || r == '.'
	})
	if len(fields) < 3 {
		return Date{}, false
	}

	var (
		month    datetime.Month
		numbers  []string
		hasMonth bool
	)
	for _, field := range fields {
		if isDigits(field) {
			numbers = append(numbers, field)
			continue
		}
		if isWeekdayName(field) {
			continue
		}
		if hasMonth || len(field) < 3 {
			return Date{}, false
		}
		m, err := datetime.ParseMonth(field)
		if err != nil {
			return Date{}, false
		}
		month, hasMonth = m, true
	}
	if !hasMonth || len(numbers) != 2 {
		return Date{}, false
	}

	dayText, yearText := numbers[0], numbers[1]
	if len(dayText) == 4 {
		dayText, yearText = yearText, dayText
	}
	if len(yearText) != 4 || len(dayText) > 2 {
		return Date{}, false
	}

	year, _ := strconv.Atoi(yearText)
	day, _ := strconv.Atoi(dayText)
	d := Date{Year: year, Month: time.Month(month), Day: day}
	if !d.Valid() {
		return Date{}, false
	}
	return d, true
}

// stripTimeOfDay drops an ISO "T..." suffix and trailing clock tokens such as "10:00",
// "10:00:05" and "AM".
func stripTimeOfDay(input string) string {
	if idx := strings.IndexByte(input, 'T'); idx > 0 && isDigits(input[idx-1:idx]) {
		input = input[:idx]
	}
	fields := strings.Fields(input)
	for len(fields) > 1 && isTimeToken(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " ")
}

func isTimeToken(s string) bool {
	if strings.Contains(s, ":") {
		return true
	}
	switch strings.ToLower(s) {
	case "am", "pm", "a.m.", "p.m.":
		return true
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isWeekdayName(s string) bool {
	lower := strings.ToLower(s)
	if len(lower) < 3 {
		return false
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.HasPrefix(strings.ToLower(d.String()), lower) {
			return true
		}
	}
	return false
}
