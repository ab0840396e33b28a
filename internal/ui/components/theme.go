package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const scaleSteps = 10

// Scale is a ten step colour ramp. Step 0 is the faintest surface tint and step 9 the
// strongest ink, whatever the theme's light or dark orientation.
type Scale [scaleSteps]lipgloss.Color

// NewScale interpolates a ramp between two hex colours in Lab space. Invalid hex
// input falls back to grays.
func NewScale(from, to string) Scale {
	start, err := colorful.Hex(from)
	if err != nil {
		start = colorful.Color{R: 1, G: 1, B: 1}
	}
	end, err := colorful.Hex(to)
	if err != nil {
		end = colorful.Color{}
	}

	var s Scale
	for i := range s {
		t := float64(i) / float64(scaleSteps-1)
		s[i] = lipgloss.Color(start.BlendLab(end, t).Clamped().Hex())
	}
	return s
}

// Step returns the colour at step i, clamped to the ramp.
func (s Scale) Step(i int) lipgloss.Color {
	if i < 0 {
		i = 0
	}
	if i >= scaleSteps {
		i = scaleSteps - 1
	}
	return s[i]
}

// Reversed flips the ramp so step 0 becomes the darkest colour.
func (s Scale) Reversed() Scale {
	var out Scale
	for i := range s {
		out[i] = s[scaleSteps-1-i]
	}
	return out
}

// Tone is a colour family.
type Tone int

const (
	ToneGray Tone = iota
	ToneBlue
	ToneGreen
	ToneOrange
	ToneRed
)

var toneNames = map[Tone]string{
	ToneGray:   "gray",
	ToneBlue:   "blue",
	ToneGreen:  "green",
	ToneOrange: "orange",
	ToneRed:    "red",
}

func (t Tone) String() string {
	if name, ok := toneNames[t]; ok {
		return name
	}
	return "gray"
}

// ParseTone maps a name to a tone, defaulting to gray.
func ParseTone(name string) Tone {
	name = strings.ToLower(strings.TrimSpace(name))
	for tone, n := range toneNames {
		if n == name {
			return tone
		}
	}
	if name == "amber" {
		return ToneOrange
	}
	return ToneGray
}

// Variant is the fill treatment shared by buttons and badges.
type Variant int

const (
	VariantSubtle Variant = iota
	VariantSolid
	VariantOutline
	VariantGhost
)

func (v Variant) String() string {
	switch v {
	case VariantSolid:
		return "solid"
	case VariantOutline:
		return "outline"
	case VariantGhost:
		return "ghost"
	default:
		return "subtle"
	}
}

// Size is a coarse size token. Terminals have one text size, so sizes map to padding.
type Size int

const (
	SizeSm Size = iota
	SizeMd
	SizeLg
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyVariant names a preset in the typography scale.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographyLabel
	TypographyHint
	TypographyCode
	TypographyEmphasis
)

// TypographyScale contains text presets derived from the gray ramp.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[variantKey]StyleStrategy
}

type variantKey struct {
	kind    string
	tone    Tone
	variant Variant
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[variantKey]StyleStrategy)}
}

// Register adds a strategy for kind ("button", "badge") in the given tone and variant.
func (vr *VariantRegistry) Register(kind string, tone Tone, variant Variant, strategy StyleStrategy) {
	vr.strategies[variantKey{kind: kind, tone: tone, variant: variant}] = strategy
}

// Get retrieves a strategy, or nil if none is registered.
func (vr *VariantRegistry) Get(kind string, tone Tone, variant Variant) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variantKey{kind: kind, tone: tone, variant: variant}]
}

// Theme is an immutable set of colours and presets. Build it once and pass it down
// through RenderContext.
type Theme struct {
	Name       string
	Dark       bool
	Scales     map[Tone]Scale
	White      lipgloss.Color
	Borders    BorderSet
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Scale returns the ramp for a tone, falling back to gray.
func (t Theme) Scale(tone Tone) Scale {
	if s, ok := t.Scales[tone]; ok {
		return s
	}
	return t.Scales[ToneGray]
}

// Gray is shorthand for t.Scale(ToneGray).Step(step).
func (t Theme) Gray(step int) lipgloss.Color {
	return t.Scale(ToneGray).Step(step)
}

// Accent is the colour used for focus rings, highlighted rows and the selected day.
func (t Theme) Accent() lipgloss.Color {
	return t.Scale(ToneBlue).Step(5)
}

// ToneForStatus maps toast and status names onto tones.
func ToneForStatus(status string) Tone {
	switch status {
	case "success":
		return ToneGreen
	case "warning":
		return ToneOrange
	case "error":
		return ToneRed
	case "info":
		return ToneBlue
	default:
		return ToneGray
	}
}

var rampEnds = map[Tone][2]string{
	ToneGray:   {"#f8f8f8", "#171717"},
	ToneBlue:   {"#eff6ff", "#1e3a8a"},
	ToneGreen:  {"#f0fdf4", "#14532d"},
	ToneOrange: {"#fffbeb", "#78350f"},
	ToneRed:    {"#fef2f2", "#7f1d1d"},
}

// LightTheme is the default theme.
func LightTheme() Theme {
	scales := make(map[Tone]Scale, len(rampEnds))
	for tone, ends := range rampEnds {
		scales[tone] = NewScale(ends[0], ends[1])
	}
	return buildTheme("light", false, scales, "#ffffff")
}

// DarkTheme flips every ramp so subtle surfaces are dark and ink is light.
func DarkTheme() Theme {
	scales := make(map[Tone]Scale, len(rampEnds))
	for tone, ends := range rampEnds {
		scales[tone] = NewScale(ends[0], ends[1]).Reversed()
	}
	return buildTheme("dark", true, scales, "#f8f8f8")
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// ThemeByName resolves "light" or "dark"; anything else is the default theme.
func ThemeByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "dark") {
		return DarkTheme()
	}
	return DefaultTheme()
}

func buildTheme(name string, dark bool, scales map[Tone]Scale, white string) Theme {
	theme := Theme{
		Name:   name,
		Dark:   dark,
		Scales: scales,
		White:  lipgloss.Color(white),
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
	}
	theme.Typography = defaultTypography(theme)

	theme.Variants = NewVariantRegistry()
	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	return theme
}

func defaultTypography(t Theme) TypographyScale {
	body := lipgloss.NewStyle().Foreground(t.Gray(8))
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true),
		Label:    body.Foreground(t.Gray(6)),
		Hint:     body.Foreground(t.Gray(4)),
		Code:     body.Background(t.Gray(1)).Padding(0, 1),
		Emphasis: body.Bold(true).Foreground(t.Gray(9)),
	}
}

// TypographyStyle returns the preset for a variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyTitle:
		return typo.Title
	case TypographyLabel:
		return typo.Label
	case TypographyHint:
		return typo.Hint
	case TypographyCode:
		return typo.Code
	case TypographyEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

var allTones = []Tone{ToneGray, ToneBlue, ToneGreen, ToneOrange, ToneRed}

func registerButtonVariants(registry *VariantRegistry) {
	for _, tone := range allTones {
		registry.Register("button", tone, VariantSolid, NewCompositeStrategy(Fill(tone, solidStep(tone)), InkWhite()))
		registry.Register("button", tone, VariantSubtle, NewCompositeStrategy(Fill(tone, 1), Ink(tone, 8)))
		registry.Register("button", tone, VariantOutline, NewCompositeStrategy(Ink(tone, 8), Outline(tone, 3)))
		registry.Register("button", tone, VariantGhost, NewCompositeStrategy(Ink(tone, 8)))
	}
}

func registerBadgeVariants(registry *VariantRegistry) {
	for _, tone := range allTones {
		registry.Register("badge", tone, VariantSolid, NewCompositeStrategy(Fill(tone, solidStep(tone)), InkWhite()))
		registry.Register("badge", tone, VariantSubtle, NewCompositeStrategy(Fill(tone, 1), Ink(tone, 6)))
		registry.Register("badge", tone, VariantOutline, NewCompositeStrategy(Ink(tone, 6), Outline(tone, 2)))
		registry.Register("badge", tone, VariantGhost, NewCompositeStrategy(Ink(tone, 6)))
	}
}

// gray buttons sit darker than coloured ones
func solidStep(tone Tone) int {
	if tone == ToneGray {
		return 7
	}
	return 5
}

// Fill sets the background to a tone step.
func Fill(tone Tone, step int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(theme.Scale(tone).Step(step))
	}
}

// Ink sets the foreground to a tone step.
func Ink(tone Tone, step int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Scale(tone).Step(step))
	}
}

// InkWhite sets the foreground to the theme's white.
func InkWhite() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.White)
	}
}

// Outline draws a rounded border in a tone step.
func Outline(tone Tone, step int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Borders.Rounded).BorderForeground(theme.Scale(tone).Step(step))
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
