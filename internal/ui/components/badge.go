package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Badge is a small status pill.
type Badge struct {
	BaseComponent
	text    string
	tone    Tone
	variant Variant
	size    Size
	prefix  string
	suffix  string
}

// NewBadge creates a subtle gray badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		tone:          ToneGray,
		variant:       VariantSubtle,
		size:          SizeMd,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get("badge", b.tone, b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	pad := 1
	if b.size == SizeSm {
		pad = 0
	}
	style = style.PaddingLeft(pad).PaddingRight(pad)

	parts := make([]string, 0, 3)
	for _, p := range []string{b.prefix, b.text, b.suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return style.Render(strings.Join(parts, " "))
}

// WithTone sets the colour family.
func (b *Badge) WithTone(tone Tone) *Badge {
	b.tone = tone
	return b
}

// WithVariant sets the fill treatment.
func (b *Badge) WithVariant(variant Variant) *Badge {
	b.variant = variant
	return b
}

// WithSize sets the size token.
func (b *Badge) WithSize(size Size) *Badge {
	b.size = size
	return b
}

// WithAffixes sets glyphs shown before and after the text.
func (b *Badge) WithAffixes(prefix, suffix string) *Badge {
	b.prefix = prefix
	b.suffix = suffix
	return b
}

// WithStyle sets the badge's base style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// StatusBadge creates a subtle badge toned for a status name such as "success".
func StatusBadge(text, status string) *Badge {
	return NewBadge(text).WithTone(ToneForStatus(status))
}
