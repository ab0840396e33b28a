// Package progress renders a determinate progress bar, either continuous or split
// into intervals.
package progress

import (
	"fmt"
	"math"
	"strings"

	bprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkui/internal/ui/components"
)

const (
	MinValue = 0.0
	MaxValue = 100.0

	defaultWidth     = 30
	defaultIntervals = 6
)

// SetValueMsg updates the value of the progress bar with the matching ID.
type SetValueMsg struct {
	ID    string
	Value float64
}

// Options configures a bar.
type Options struct {
	ID    string
	Label string
	// Hint shows the percentage on the right of the label row.
	Hint bool
	// Intervals > 0 switches to interval mode with that many segments.
	Intervals int
	Width     int
}

// Model is a progress bar. The value is a percentage clamped to [0, 100].
type Model struct {
	opts  Options
	value float64
	bar   bprogress.Model
	theme components.Theme
}

// New creates a bar with value 0.
func New(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	bar := bprogress.New(bprogress.WithSolidFill("#404040"), bprogress.WithoutPercentage())
	bar.Width = opts.Width
	return Model{opts: opts, bar: bar, theme: components.DefaultTheme()}
}

// WithTheme sets the theme used by View.
func (m Model) WithTheme(theme components.Theme) Model {
	m.theme = theme
	m.bar.FullColor = string(theme.Gray(7))
	m.bar.EmptyColor = string(theme.Gray(2))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update applies SetValueMsg addressed to this bar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if set, ok := msg.(SetValueMsg); ok && set.ID == m.opts.ID {
		m.SetValue(set.Value)
	}
	return m, nil
}

// SetValue stores value clamped to [0, 100]. NaN counts as 0.
func (m *Model) SetValue(value float64) {
	m.value = Clamp(value)
}

// FormatPercent renders a percentage such as "42.5%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%g%%", v)
}

// Value returns the clamped percentage.
func (m Model) Value() float64 { return m.value }

// Clamp limits v to [0, 100].
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinValue
	}
	return math.Max(MinValue, math.Min(MaxValue, v))
}

// FilledIntervals is round(value/100*count); values above 100 fill every interval.
func FilledIntervals(value float64, count int) int {
	if count <= 0 {
		return 0
	}
	if value > MaxValue {
		return count
	}
	if value <= MinValue || math.IsNaN(value) {
		return 0
	}
	return int(math.Round(value / MaxValue * float64(count)))
}

// View renders the optional label row and the bar.
func (m Model) View() string {
	rows := make([]string, 0, 2)
	if header := m.header(); header != "" {
		rows = append(rows, header)
	}
	if m.opts.Intervals > 0 {
		rows = append(rows, m.intervals())
	} else {
		rows = append(rows, m.bar.ViewAs(m.value/MaxValue))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) header() string {
	if m.opts.Label == "" && !m.opts.Hint {
		return ""
	}
	label := components.TypographyStyle(m.theme, components.TypographyLabel).Render(m.opts.Label)
	if !m.opts.Hint {
		return label
	}
	hint := components.TypographyStyle(m.theme, components.TypographyHint).Render(FormatPercent(m.value))
	gap := max(m.opts.Width-lipgloss.Width(label)-lipgloss.Width(hint), 1)
	return label + strings.Repeat(" ", gap) + hint
}

func (m Model) intervals() string {
	count := m.opts.Intervals
	if count <= 0 {
		count = defaultIntervals
	}
	filled := FilledIntervals(m.value, count)
	// one cell between segments
	segment := max((m.opts.Width-(count-1))/count, 1)

	on := lipgloss.NewStyle().Foreground(m.theme.Gray(7))
	off := lipgloss.NewStyle().Foreground(m.theme.Gray(2))
	parts := make([]string, count)
	for i := range parts {
		style := off
		if i < filled {
			style = on
		}
		parts[i] = style.Render(strings.Repeat("█", segment))
	}
	return strings.Join(parts, " ")
}
