// Package datepicker implements the date picker state machine: a popup with date,
// month and year views plus a free-text input that is reconciled with the canonical
// "YYYY-MM-DD" value on commit.
package datepicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	"github.com/alexisbeaulieu97/inkui/internal/controlled"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
)

// View is the calendar page shown while the popup is open.
type View int

const (
	ViewDate View = iota
	ViewMonth
	ViewYear
)

func (v View) String() string {
	switch v {
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	default:
		return "date"
	}
}

// State combines the open flag and the view.
type State int

const (
	StateClosed State = iota
	StateDateView
	StateMonthView
	StateYearView
)

// Focus describes where focus went when the input lost it.
type Focus int

const (
	// FocusElsewhere means focus left the widget.
	FocusElsewhere Focus = iota
	// FocusPopup means focus moved into the calendar popup.
	FocusPopup
)

// Options configures a Controller. Start from DefaultOptions: the zero value turns
// AllowCustom, AutoClose and Clearable off.
type Options struct {
	// Value makes the picker controlled when non-nil.
	Value        *string
	DefaultValue string

	// Format is a display format using YYYY, MM, DD style tokens. Empty shows the key.
	Format      string
	Label       string
	Placeholder string

	Readonly    bool
	Disabled    bool
	AllowCustom bool
	AutoClose   bool
	Clearable   bool

	WeekStart time.Weekday
	Clock     calendar.Clock
	Logger    *logger.Logger

	OnChange func(string)
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Placeholder: "Select date",
		AllowCustom: true,
		AutoClose:   true,
		Clearable:   true,
		WeekStart:   time.Sunday,
	}
}

// Controller owns the picker state. It is not safe for concurrent use; drive it from
// one event loop.
type Controller struct {
	opts  Options
	value controlled.Value[string]

	open  bool
	view  View
	year  int
	month time.Month

	selected string
	buffer   string
	typing   bool

	// reported is the last value sent to OnChange while the host owns the value.
	reported *string
}

// New builds a controller and syncs the calendar to the initial value.
func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = calendar.SystemClock
	}
	def := opts.DefaultValue
	if def == "" && opts.Value != nil {
		def = *opts.Value
	}
	c := &Controller{opts: opts, value: controlled.New(opts.Value, def)}
	today := c.today()
	c.year, c.month = today.Year, today.Month
	c.syncFromValue(c.value.Get())
	return c
}

// Value returns the canonical value, "YYYY-MM-DD" or "".
func (c *Controller) Value() string { return c.value.Get() }

// Selected returns the key highlighted in the grid. It can differ from Value when the
// picker is not clearable and shows today for an empty value.
func (c *Controller) Selected() string { return c.selected }

// IsOpen reports whether the popup is shown.
func (c *Controller) IsOpen() bool { return c.open }

// View returns the current calendar page.
func (c *Controller) View() View { return c.view }

// State reports the combined open/view state.
func (c *Controller) State() State {
	if !c.open {
		return StateClosed
	}
	switch c.view {
	case ViewMonth:
		return StateMonthView
	case ViewYear:
		return StateYearView
	default:
		return StateDateView
	}
}

// Year is the year the calendar shows.
func (c *Controller) Year() int { return c.year }

// Month is the month the calendar shows.
func (c *Controller) Month() time.Month { return c.month }

// Typing reports whether the input holds an uncommitted buffer.
func (c *Controller) Typing() bool { return c.typing }

// Options returns the configuration the controller was built with.
func (c *Controller) Options() Options { return c.opts }

// Editable reports whether free text input is accepted.
func (c *Controller) Editable() bool {
	return !c.opts.Readonly && !c.opts.Disabled && c.opts.AllowCustom
}

// DisplayText is what the input shows: the buffer while typing, otherwise the
// selected date in the display format.
func (c *Controller) DisplayText() string {
	if c.typing {
		return c.buffer
	}
	if c.selected == "" {
		return ""
	}
	return calendar.FormatValue(c.selected, c.opts.Format)
}

// Weeks builds the grid for the displayed month.
func (c *Controller) Weeks() []calendar.Week {
	return calendar.GenerateWeeks(c.year, c.month, c.selected,
		calendar.WithWeekStart(c.opts.WeekStart),
		calendar.WithClock(c.opts.Clock),
	)
}

// YearRange returns the twelve years shown in the year view.
func (c *Controller) YearRange() [12]int {
	return calendar.YearRange(c.year)
}

// Header is the popup title for the current view.
func (c *Controller) Header() string {
	switch c.view {
	case ViewMonth:
		return fmt.Sprintf("%d", c.year)
	case ViewYear:
		r := c.YearRange()
		return fmt.Sprintf("%d - %d", r[0], r[11])
	default:
		return fmt.Sprintf("%s %d", c.month, c.year)
	}
}

// Open shows the popup.
func (c *Controller) Open() {
	if c.opts.Disabled {
		return
	}
	c.open = true
}

// Activate is an input click: it opens the popup and starts a typing session when
// the input is editable.
func (c *Controller) Activate() {
	if c.opts.Disabled {
		return
	}
	if c.Editable() && !c.typing {
		c.buffer = c.DisplayText()
		c.typing = true
	}
	c.Open()
}

// Toggle is the chevron: it opens a closed popup and closes an open one.
func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// CycleView steps date, month, year and back to date.
func (c *Controller) CycleView() {
	switch c.view {
	case ViewDate:
		c.view = ViewMonth
	case ViewMonth:
		c.view = ViewYear
	default:
		c.view = ViewDate
	}
}

// SelectDay commits d and closes the popup when AutoClose is set.
func (c *Controller) SelectDay(d calendar.Date) {
	if c.opts.Disabled || c.opts.Readonly {
		return
	}
	c.selectDate(d)
	c.maybeClose(true)
	c.typing = false
}

// SelectMonth shows month in the date view without committing.
func (c *Controller) SelectMonth(month time.Month) {
	if month < time.January || month > time.December {
		return
	}
	c.month = month
	c.view = ViewDate
}

// SelectYear shows year in the month view without committing.
func (c *Controller) SelectYear(year int) {
	c.year = year
	c.view = ViewMonth
}

// Prev moves back one month, one year or twelve years depending on the view.
func (c *Controller) Prev() { c.step(-1) }

// Next moves forward one month, one year or twelve years depending on the view.
func (c *Controller) Next() { c.step(1) }

func (c *Controller) step(dir int) {
	switch c.view {
	case ViewDate:
		c.year, c.month = calendar.AddMonths(c.year, c.month, dir)
	case ViewMonth:
		c.year += dir
	case ViewYear:
		c.year += 12 * dir
	}
}

// Type replaces the input buffer. Nothing is committed until Enter, Blur or Close.
func (c *Controller) Type(text string) {
	if !c.Editable() {
		return
	}
	c.typing = true
	c.buffer = text
	c.Open()
}

// Buffer returns the uncommitted input text.
func (c *Controller) Buffer() string { return c.buffer }

// Enter commits the input and closes per AutoClose.
func (c *Controller) Enter() {
	c.commitInput(true)
	c.typing = false
}

// Blur commits the input unless focus moved into the popup.
func (c *Controller) Blur(next Focus) {
	if next == FocusPopup {
		return
	}
	c.commitInput(true)
	c.typing = false
}

// Clear empties the value. A picker that is not clearable snaps to today instead.
func (c *Controller) Clear() {
	if c.opts.Disabled || c.opts.Readonly {
		return
	}
	if c.opts.Clearable {
		c.clearSelection()
	} else {
		c.selectDate(c.today())
	}
	c.maybeClose(true)
	c.typing = false
	c.view = ViewDate
}

// Today selects the current local day.
func (c *Controller) Today() { c.SelectDay(c.today()) }

// Tomorrow selects the day after the current local day.
func (c *Controller) Tomorrow() { c.SelectDay(c.today().AddDays(1)) }

// Close hides the popup, resets the view and commits a pending buffer.
func (c *Controller) Close() {
	c.view = ViewDate
	if c.typing {
		c.commitInput(false)
		c.typing = false
	}
	c.open = false
}

// SetValue pushes a new controlled value and re-syncs the calendar. Nil releases
// control.
func (c *Controller) SetValue(v *string) {
	c.reported = nil
	c.value.SetExternal(v)
	c.syncFromValue(c.value.Get())
}

func (c *Controller) today() calendar.Date {
	return calendar.Today(c.opts.Clock)
}

func (c *Controller) syncFromValue(v string) {
	if strings.TrimSpace(v) == "" {
		if c.opts.Clearable {
			c.selected = ""
			return
		}
		today := c.today()
		c.year, c.month = today.Year, today.Month
		c.selected = today.Key()
		return
	}
	d, err := calendar.CoerceAt(v, c.opts.Format, c.opts.Clock)
	if err != nil {
		c.opts.Logger.WithFields(map[string]any{"value": v}).Debug("ignoring unparsable date value")
		c.selected = ""
		return
	}
	c.year, c.month = d.Year, d.Month
	c.selected = d.Key()
}

func (c *Controller) commitInput(close bool) {
	raw := strings.TrimSpace(c.DisplayText())
	if raw == "" {
		if c.opts.Clearable {
			c.clearSelection()
		} else {
			c.selectDate(c.today())
		}
		c.maybeClose(close)
		return
	}
	if c.selected != "" && raw == strings.TrimSpace(calendar.FormatValue(c.selected, c.opts.Format)) {
		// untouched input keeps the committed value
		c.buffer = ""
		c.maybeClose(close)
		return
	}
	d, err := calendar.CoerceAt(raw, c.opts.Format, c.opts.Clock)
	if err != nil {
		c.opts.Logger.WithFields(map[string]any{"input": raw}).Debug("discarding date input: " + err.Error())
		c.buffer = ""
		return
	}
	c.selectDate(d)
	c.maybeClose(close)
}

func (c *Controller) clearSelection() {
	if c.selected == "" {
		return
	}
	c.selected = ""
	c.buffer = ""
	c.notify("")
}

func (c *Controller) selectDate(d calendar.Date) {
	key := d.Key()
	c.selected = key
	c.year, c.month = d.Year, d.Month
	c.view = ViewDate
	c.notify(key)
}

func (c *Controller) notify(next string) {
	if next == c.value.Get() {
		return
	}
	if !c.value.Controlled() {
		c.value.Commit(next)
		c.opts.Logger.WithFields(map[string]any{"value": next}).Debug("date committed")
		if c.opts.OnChange != nil {
			c.opts.OnChange(next)
		}
		return
	}

	if c.reported == nil || *c.reported != next {
		c.reported = &next
		c.opts.Logger.WithFields(map[string]any{"value": next}).Debug("date proposed to host")
		if c.opts.OnChange != nil {
			c.opts.OnChange(next)
		}
	}
	c.resyncSelection()
}

// resyncSelection shows the host's value again while keeping the page the user is on.
// OnChange may already have pushed the new value through SetValue.
func (c *Controller) resyncSelection() {
	year, month := c.year, c.month
	c.syncFromValue(c.value.Get())
	c.year, c.month = year, month
}

func (c *Controller) maybeClose(condition bool) {
	if condition && c.opts.AutoClose {
		c.open = false
		c.view = ViewDate
	}
}
