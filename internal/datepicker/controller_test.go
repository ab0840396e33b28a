package datepicker

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkui/internal/calendar"
	"github.com/alexisbeaulieu97/inkui/internal/logger"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local)

type recorder struct {
	values []string
}

func (r *recorder) onChange(v string) {
	r.values = append(r.values, v)
}

func newController(t *testing.T, mutate func(*Options)) (*Controller, *recorder) {
	t.Helper()

	rec := &recorder{}
	opts := DefaultOptions()
	opts.Clock = calendar.FixedClock(fixedNow)
	opts.OnChange = rec.onChange
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts), rec
}

func TestInvalidTypedInputLeavesValueUnchanged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	c, rec := newController(t, func(o *Options) {
		o.DefaultValue = "2024-03-15"
		o.Logger = log
	})

	c.Activate()
	c.Type("not-a-date")
	require.Equal(t, "not-a-date", c.DisplayText())

	c.Blur(FocusElsewhere)
	require.Equal(t, "2024-03-15", c.Value())
	require.Equal(t, "2024-03-15", c.DisplayText())
	require.False(t, c.Typing())
	require.Empty(t, rec.values)
	require.Contains(t, buf.String(), "discarding date input")
}

func TestTypingCommitsOnlyOnEnter(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, nil)

	c.Type("Mar 20, 2024")
	require.True(t, c.IsOpen())
	require.Empty(t, rec.values)
	require.Equal(t, "", c.Value())

	c.Enter()
	require.Equal(t, "2024-03-20", c.Value())
	require.Equal(t, []string{"2024-03-20"}, rec.values)
	require.False(t, c.IsOpen())

	// Re-entering the same date is not a change.
	c.Type("2024-03-20")
	c.Enter()
	require.Len(t, rec.values, 1)
}

func TestBlurIntoPopupDoesNotCommit(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, nil)

	c.Type("2024-04-01")
	c.Blur(FocusPopup)
	require.True(t, c.Typing())
	require.Empty(t, rec.values)

	c.Blur(FocusElsewhere)
	require.Equal(t, []string{"2024-04-01"}, rec.values)
}

func TestClearWhenNotClearableSnapsToToday(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, func(o *Options) {
		o.Clearable = false
		o.DefaultValue = "2023-12-25"
	})

	c.Clear()
	require.Equal(t, "2024-03-15", c.Value())
	require.Equal(t, []string{"2024-03-15"}, rec.values)
	require.Equal(t, 2024, c.Year())
	require.Equal(t, time.March, c.Month())
}

func TestEmptyCommitWhenNotClearableSnapsToToday(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, func(o *Options) {
		o.Clearable = false
		o.DefaultValue = "2023-12-25"
	})

	c.Type("   ")
	c.Enter()
	require.Equal(t, "2024-03-15", c.Value())
	require.Equal(t, []string{"2024-03-15"}, rec.values)
}

func TestEmptyValueWhenNotClearableShowsToday(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, func(o *Options) { o.Clearable = false })
	require.Equal(t, "", c.Value())
	require.Equal(t, "2024-03-15", c.Selected())
	require.Equal(t, "2024-03-15", c.DisplayText())
	require.Empty(t, rec.values)
}

func TestClearNotifiesOnlyWhenSomethingWasSelected(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, nil)
	c.Clear()
	require.Empty(t, rec.values)

	c.SelectDay(calendar.New(2024, time.March, 1))
	c.Clear()
	require.Equal(t, []string{"2024-03-01", ""}, rec.values)
	require.Equal(t, "", c.Value())

	c.Type("")
	c.Enter()
	require.Len(t, rec.values, 2)
}

func TestSelectDayRespectsAutoClose(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, nil)
	c.Open()
	c.SelectDay(calendar.New(2024, time.March, 2))
	require.Equal(t, StateClosed, c.State())

	c, _ = newController(t, func(o *Options) { o.AutoClose = false })
	c.Open()
	c.CycleView()
	c.SelectDay(calendar.New(2024, time.March, 2))
	require.Equal(t, StateDateView, c.State())
	require.Equal(t, "2024-03-02", c.Value())
}

func TestViewCyclingAndNavigation(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, func(o *Options) { o.DefaultValue = "2024-01-10" })
	c.Open()
	require.Equal(t, StateDateView, c.State())
	require.Equal(t, "January 2024", c.Header())

	c.Prev()
	require.Equal(t, 2023, c.Year())
	require.Equal(t, time.December, c.Month())
	c.Next()
	c.Next()
	require.Equal(t, time.February, c.Month())

	c.CycleView()
	require.Equal(t, StateMonthView, c.State())
	require.Equal(t, "2024", c.Header())
	c.Next()
	require.Equal(t, 2025, c.Year())

	c.CycleView()
	require.Equal(t, StateYearView, c.State())
	require.Equal(t, "2016 - 2027", c.Header())
	c.Prev()
	require.Equal(t, 2013, c.Year())

	c.SelectYear(2030)
	require.Equal(t, StateMonthView, c.State())
	c.SelectMonth(time.June)
	require.Equal(t, StateDateView, c.State())
	require.Equal(t, "June 2030", c.Header())

	c.CycleView()
	c.CycleView()
	c.CycleView()
	require.Equal(t, StateDateView, c.State())

	require.Empty(t, rec.values, "navigation never commits")
}

func TestCloseResetsViewAndCommitsBuffer(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, nil)
	c.Type("2024-05-05")
	c.CycleView()
	c.Close()

	require.Equal(t, StateClosed, c.State())
	require.Equal(t, ViewDate, c.View())
	require.Equal(t, []string{"2024-05-05"}, rec.values)
}

func TestTodayAndTomorrowShortcuts(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, nil)
	c.Today()
	c.Tomorrow()
	require.Equal(t, []string{"2024-03-15", "2024-03-16"}, rec.values)
}

func TestReadonlyAndDisabledIgnoreInput(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, func(o *Options) { o.Readonly = true })
	c.Type("2024-01-01")
	require.False(t, c.Typing())
	c.Open()
	require.True(t, c.IsOpen())

	c, _ = newController(t, func(o *Options) { o.Disabled = true })
	c.Open()
	c.Activate()
	require.False(t, c.IsOpen())

	c, _ = newController(t, func(o *Options) { o.AllowCustom = false })
	c.Type("2024-01-01")
	require.False(t, c.Typing())

	require.Empty(t, rec.values)
}

func TestFormatAppliesToDisplayAndStrictInput(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, func(o *Options) {
		o.Format = "DD/MM/YYYY"
		o.DefaultValue = "2024-03-05"
	})
	require.Equal(t, "05/03/2024", c.DisplayText())

	c.Type("10/04/2024")
	c.Enter()
	require.Equal(t, "2024-04-10", c.Value())
	require.Equal(t, "10/04/2024", c.DisplayText())
	require.Equal(t, []string{"2024-04-10"}, rec.values)
}

func TestYearlessFormatUntouchedCommitKeepsValue(t *testing.T) {
	t.Parallel()

	c, rec := newController(t, func(o *Options) {
		o.Format = "D MMM"
		o.DefaultValue = "2020-06-01"
	})
	require.Equal(t, "1 Jun", c.DisplayText())

	c.Activate()
	c.Enter()
	c.Activate()
	c.Blur(FocusElsewhere)
	require.Equal(t, "2020-06-01", c.Value())
	require.Empty(t, rec.values)

	c.Type("5 Jul")
	c.Enter()
	require.Equal(t, "2024-07-05", c.Value(), "a typed yearless date takes the current year")
	require.Equal(t, []string{"2024-07-05"}, rec.values)
}

func TestControlledHostAcceptingInOnChange(t *testing.T) {
	t.Parallel()

	external := "2024-03-10"
	var c *Controller
	var changes []string
	opts := DefaultOptions()
	opts.Clock = calendar.FixedClock(fixedNow)
	opts.Value = &external
	opts.OnChange = func(v string) {
		changes = append(changes, v)
		external = v
		c.SetValue(&external)
	}
	c = New(opts)

	c.SelectDay(calendar.New(2024, time.March, 20))
	require.Equal(t, "2024-03-20", c.Value())
	require.Equal(t, "2024-03-20", c.DisplayText())

	c.Blur(FocusElsewhere)
	require.Equal(t, []string{"2024-03-20"}, changes)
}

func TestControlledValue(t *testing.T) {
	t.Parallel()

	external := "2024-03-10"
	c, rec := newController(t, func(o *Options) { o.Value = &external })

	c.SelectDay(calendar.New(2024, time.March, 11))
	require.Equal(t, []string{"2024-03-11"}, rec.values)
	require.Equal(t, "2024-03-10", c.Value())
	require.Equal(t, "2024-03-10", c.Selected(), "the picker keeps showing the host value")
	require.Equal(t, "2024-03-10", c.DisplayText())

	c.SelectDay(calendar.New(2024, time.March, 11))
	c.Blur(FocusElsewhere)
	c.Enter()
	require.Equal(t, []string{"2024-03-11"}, rec.values, "a proposal is reported once")

	c.Type("2024-03-12")
	c.Enter()
	require.Equal(t, []string{"2024-03-11", "2024-03-12"}, rec.values)
	require.Equal(t, "2024-03-10", c.DisplayText())

	next := "2025-07-04"
	c.SetValue(&next)
	require.Equal(t, "2025-07-04", c.Value())
	require.Equal(t, "2025-07-04", c.Selected())
	require.Equal(t, 2025, c.Year())
	require.Equal(t, time.July, c.Month())
}

func TestWeeksMarkSelectionAndToday(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, func(o *Options) { o.DefaultValue = "2024-03-20" })

	var selected, today []string
	for _, week := range c.Weeks() {
		for _, day := range week {
			if day.IsSelected {
				selected = append(selected, day.Key)
			}
			if day.IsToday {
				today = append(today, day.Key)
			}
		}
	}
	require.Equal(t, []string{"2024-03-20"}, selected)
	require.Equal(t, []string{"2024-03-15"}, today)
}
