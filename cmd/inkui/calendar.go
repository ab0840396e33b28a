package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
)

type calendarOptions struct {
	selected   string
	jsonOutput bool
}

func newCalendarCmd(app *appContext) *cobra.Command {
	opts := &calendarOptions{}

	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Print the month grid the date picker shows",
		Long: `Print a month as the date picker lays it out: full weeks starting on the
configured week start, with today and the selected date marked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := ""
			if len(args) == 1 {
				month = args[0]
			}
			return runCalendar(cmd, app, month, opts)
		},
	}

	cmd.Flags().StringVar(&opts.selected, "select", "", "Date to mark as selected, in any accepted input format")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the grid as JSON")

	return cmd
}

func runCalendar(cmd *cobra.Command, app *appContext, month string, opts *calendarOptions) error {
	today := calendar.Today(clock)
	year, mon := today.Year, today.Month
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return newCommandError("show calendar", fmt.Sprintf("reading month %q", month), err, "Pass the month as YYYY-MM, e.g. 2024-03.")
		}
		year, mon = t.Year(), t.Month()
	}

	selected := ""
	if opts.selected != "" {
		d, err := calendar.Coerce(opts.selected, app.settings.DateFormat)
		if err != nil {
			return newCommandError("show calendar", "reading --select", err, "Use YYYY-MM-DD or the configured date format.")
		}
		selected = d.Key()
		if month == "" {
			year, mon = d.Year, d.Month
		}
	}

	weeks := calendar.GenerateWeeks(year, mon, selected,
		calendar.WithWeekStart(app.settings.WeekStart),
		calendar.WithClock(clock),
	)
	app.log.WithFields(map[string]any{"year": year, "month": int(mon), "weeks": len(weeks)}).Debug("calendar generated")

	if opts.jsonOutput {
		return renderCalendarJSON(cmd.OutOrStdout(), year, mon, weeks)
	}
	renderCalendarText(cmd.OutOrStdout(), year, mon, app.settings.WeekStart, weeks)
	return nil
}

// renderCalendarText prints a grid with three-cell columns. Today is suffixed with
// "'" and the selected day with "*".
func renderCalendarText(w io.Writer, year int, month time.Month, weekStart time.Weekday, weeks []calendar.Week) {
	const width = 7 * 4
	title := fmt.Sprintf("%s %d", month, year)
	pad := max((width-len(title))/2, 0)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), title)

	head := make([]string, 7)
	for i := range head {
		head[i] = fmt.Sprintf("%-3s", ((weekStart + time.Weekday(i)) % 7).String()[:2])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(head, " "), " "))

	for _, week := range weeks {
		cells := make([]string, 7)
		for i, day := range week {
			cells[i] = dayCell(day)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}

func dayCell(day calendar.Day) string {
	if !day.InMonth {
		return "   "
	}
	mark := " "
	switch {
	case day.IsSelected:
		mark = "*"
	case day.IsToday:
		mark = "'"
	}
	return fmt.Sprintf("%2d%s", day.Date.Day, mark)
}

type calendarPayload struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Weeks [][]dayEntry `json:"weeks"`
}

type dayEntry struct {
	Date     string `json:"date"`
	InMonth  bool   `json:"in_month"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

func renderCalendarJSON(w io.Writer, year int, month time.Month, weeks []calendar.Week) error {
	payload := calendarPayload{Year: year, Month: int(month), Weeks: make([][]dayEntry, len(weeks))}
	for i, week := range weeks {
		row := make([]dayEntry, len(week))
		for j, day := range week {
			row[j] = dayEntry{Date: day.Key, InMonth: day.InMonth, Today: day.IsToday, Selected: day.IsSelected}
		}
		payload.Weeks[i] = row
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
