package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that renders to a string with the default theme.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderFunc adapts a plain function, such as a Bubble Tea model's View, to Renderable.
type RenderFunc func() string

// View implements Renderable.
func (f RenderFunc) View() string { return f() }

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies styling transformations to a lipgloss.Style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	existing, ok := b.strategy.(CompositeStrategy)
	if !ok {
		current := b.strategy
		existing = CompositeStrategy{funcs: []StyleFunc{func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if current != nil {
				base = current.Apply(base, theme)
			}
			return base
		}}}
	}
	funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
	copy(funcs, existing.funcs)
	b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
}

// RenderContext provides the theme and available width to components during rendering.
type RenderContext struct {
	Theme Theme
	// Width is the number of cells available, 0 when unknown.
	Width int
}

// DefaultContext returns a render context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a new context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// Alignment specifies how content is aligned on the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Position converts the alignment to a lipgloss.Position.
func (a Alignment) Position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func render(r Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}
