package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a visual button. Focused buttons are underlined; disabled and loading
// buttons render faded and ignore activation.
type Button struct {
	BaseComponent
	label       string
	tone        Tone
	variant     Variant
	size        Size
	disabled    bool
	focused     bool
	loading     bool
	loadingText string
	spinner     string
	iconLeft    string
	iconRight   string
	onPress     func()
}

// NewButton creates a subtle gray button, matching the web kit defaults.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		tone:          ToneGray,
		variant:       VariantSubtle,
		size:          SizeSm,
		spinner:       "◌",
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.content())
}

func (b *Button) content() string {
	label := b.label
	if b.loading {
		if b.loadingText != "" {
			label = b.loadingText
		}
		return b.spinner + " " + label
	}
	if b.iconLeft != "" {
		label = b.iconLeft + " " + label
	}
	if b.iconRight != "" {
		label = label + " " + b.iconRight
	}
	return label
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)

	if b.Inactive() {
		style = style.Foreground(theme.Gray(4))
		if b.variant != VariantGhost {
			style = style.Background(theme.Gray(1))
		}
		if b.variant == VariantOutline {
			style = style.Border(theme.Borders.Rounded).BorderForeground(theme.Gray(2))
		}
	} else if strategy := theme.Variants.Get("button", b.tone, b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	style = style.PaddingLeft(int(b.size) + 1).PaddingRight(int(b.size) + 1)
	if b.focused && !b.Inactive() {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithTone sets the colour family.
func (b *Button) WithTone(tone Tone) *Button {
	b.tone = tone
	return b
}

// WithVariant sets the fill treatment.
func (b *Button) WithVariant(variant Variant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the size token.
func (b *Button) WithSize(size Size) *Button {
	b.size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused marks the button as the focused control.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithLoading shows frame (a spinner frame) and optional text in place of the label.
func (b *Button) WithLoading(loading bool, frame, text string) *Button {
	b.loading = loading
	if frame != "" {
		b.spinner = frame
	}
	b.loadingText = text
	return b
}

// WithIcons sets glyphs rendered around the label.
func (b *Button) WithIcons(left, right string) *Button {
	b.iconLeft = left
	b.iconRight = right
	return b
}

// WithOnPress sets the activation callback.
func (b *Button) WithOnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithAppliers applies theme-based style modifiers before the variant.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Press runs the callback unless the button is disabled or loading. It reports
// whether the callback ran.
func (b *Button) Press() bool {
	if b.Inactive() || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Inactive reports whether the button is disabled or loading.
func (b *Button) Inactive() bool {
	return b.disabled || b.loading
}

// SolidButton creates a solid button in a tone.
func SolidButton(label string, tone Tone) *Button {
	return NewButton(label).WithTone(tone).WithVariant(VariantSolid)
}

// OutlineButton creates an outline button in a tone.
func OutlineButton(label string, tone Tone) *Button {
	return NewButton(label).WithTone(tone).WithVariant(VariantOutline)
}

// GhostButton creates a ghost button in a tone.
func GhostButton(label string, tone Tone) *Button {
	return NewButton(label).WithTone(tone).WithVariant(VariantGhost)
}
