package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Overflow decides what Text does with content wider than the available width.
type Overflow int

const (
	OverflowNone Overflow = iota
	OverflowWrap
	OverflowTruncate
)

const ellipsis = "…"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content  string
	overflow Overflow
	width    int
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text. An explicit width wins over the context width.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	width := t.width
	if width <= 0 {
		width = ctx.Width
	}
	return t.ComputeStyle(ctx.Theme).Render(Fit(t.content, width, t.overflow))
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithOverflow sets how overflowing content is handled.
func (t *Text) WithOverflow(overflow Overflow) *Text {
	t.overflow = overflow
	return t
}

// WithWidth fixes the available width in cells.
func (t *Text) WithWidth(width int) *Text {
	t.width = width
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// Fit wraps or truncates s to width cells. Width 0 leaves s untouched.
func Fit(s string, width int, overflow Overflow) string {
	if width <= 0 {
		return s
	}
	switch overflow {
	case OverflowWrap:
		return wordwrap.String(s, width)
	case OverflowTruncate:
		return Truncate(s, width)
	default:
		return s
	}
}

// Truncate cuts s to width cells, ending with an ellipsis when something was cut.
// ANSI sequences are preserved.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

// TitleText creates title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyTitle))
}

// LabelText creates a form label.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyLabel))
}

// HintText creates muted helper text.
func HintText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyHint))
}

// CodeText creates code-styled text.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCode))
}
