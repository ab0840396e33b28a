package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a separator line, optionally with a label set into it.
type Divider struct {
	BaseComponent
	char      string
	length    int
	direction Direction
	label     string
	position  Alignment
}

// NewDivider creates a horizontal divider.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		direction:     DirectionHorizontal,
		position:      AlignCenter,
	}
}

// VerticalDivider creates a vertical divider.
func VerticalDivider(length int) *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical).WithLength(length)
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Horizontal dividers fill the context width
// unless a length was set.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	length := d.length
	if length <= 0 {
		length = ctx.Width
	}
	if length <= 0 {
		length = defaultDividerWidth
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Gray(2))
	if d.direction == DirectionVertical {
		return style.Render(strings.TrimSuffix(strings.Repeat(d.char+"\n", length), "\n"))
	}
	if d.label == "" {
		return style.Render(strings.Repeat(d.char, length))
	}

	label := " " + Truncate(d.label, max(length-4, 1)) + " "
	rest := max(length-lipgloss.Width(label), 0)
	var left int
	switch d.position {
	case AlignStart:
		left = min(2, rest)
	case AlignEnd:
		left = max(rest-2, 0)
	default:
		left = rest / 2
	}
	labelStyle := TypographyStyle(ctx.Theme, TypographyLabel)
	return style.Render(strings.Repeat(d.char, left)) +
		labelStyle.Render(label) +
		style.Render(strings.Repeat(d.char, rest-left))
}

// WithChar sets the character used for the line.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLength fixes the length in cells (horizontal) or lines (vertical).
func (d *Divider) WithLength(length int) *Divider {
	d.length = length
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithLabel sets text shown inside a horizontal divider at the given position.
func (d *Divider) WithLabel(label string, position Alignment) *Divider {
	d.label = label
	d.position = position
	return d
}
