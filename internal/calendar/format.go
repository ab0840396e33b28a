package calendar

import (
	"strings"
)

// dayjs-style tokens, longest first so "MMMM" wins over "MM".
var formatTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
}

// Layout converts a dayjs-style format such as "DD/MM/YYYY" or "MMM D, YYYY" into a Go
// time layout. Text inside square brackets is copied literally. An empty format maps
// to KeyLayout.
func Layout(format string) string {
	if format == "" {
		return KeyLayout
	}

	var out strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end > 0 {
				out.WriteString(format[i+1 : i+end])
				i += end + 1
				continue
			}
		}

		matched := false
		for _, tok := range formatTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				out.WriteString(tok.layout)
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(format[i])
			i++
		}
	}
	return out.String()
}

// Format renders d with a dayjs-style format. An empty format yields the canonical key.
func Format(d Date, format string) string {
	if format == "" {
		return d.Key()
	}
	return d.Time().Format(Layout(format))
}

// FormatValue renders a canonical value with format. Values that do not parse as a
// canonical key are returned untouched.
func FormatValue(value, format string) string {
	if value == "" {
		return ""
	}
	d, err := ParseKey(value)
	if err != nil {
		return value
	}
	return Format(d, format)
}
