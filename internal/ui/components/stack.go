package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a vertical stack.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack. Horizontal stacks split the context width
// evenly between children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Width > 0 && len(s.children) > 0 {
		available := ctx.Width - s.gap*(len(s.children)-1)
		if available > 0 {
			childCtx = ctx.WithWidth(available / len(s.children))
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(lipgloss.Top, s.interleave(views, strings.Repeat(" ", s.gap))...)
	} else {
		// an empty block is one blank line
		content = lipgloss.JoinVertical(s.align.Position(), s.interleave(views, strings.Repeat("\n", max(s.gap-1, 0)))...)
	}
	return style.Render(content)
}

func (s *Stack) interleave(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the number of blank cells (horizontal) or lines (vertical) between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment of a vertical stack.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
