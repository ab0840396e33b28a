package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleAndThemes(t *testing.T) {
	scale := NewScale("#ffffff", "#000000")
	assert.NotEqual(t, scale[0], scale[9])
	assert.Equal(t, scale[9], scale.Reversed()[0])
	assert.Equal(t, scale[0], scale.Step(-3))
	assert.Equal(t, scale[9], scale.Step(42))

	light := LightTheme()
	dark := DarkTheme()
	assert.False(t, light.Dark)
	assert.True(t, dark.Dark)
	assert.Equal(t, light.Gray(9), dark.Gray(0), "dark theme flips the ramps")
	assert.Equal(t, "dark", ThemeByName(" Dark ").Name)
	assert.Equal(t, "light", ThemeByName("neon").Name)

	assert.Equal(t, light.Scale(ToneGray), light.Scale(Tone(99)), "unknown tones fall back to gray")
}

func TestParseToneAndStatus(t *testing.T) {
	assert.Equal(t, ToneRed, ParseTone("RED"))
	assert.Equal(t, ToneOrange, ParseTone("amber"))
	assert.Equal(t, ToneGray, ParseTone("teal"))
	assert.Equal(t, ToneGreen, ToneForStatus("success"))
	assert.Equal(t, ToneGray, ToneForStatus(""))
}

func TestVariantRegistryCoversEveryToneAndVariant(t *testing.T) {
	theme := DefaultTheme()
	for _, tone := range allTones {
		for _, variant := range []Variant{VariantSolid, VariantSubtle, VariantOutline, VariantGhost} {
			assert.NotNil(t, theme.Variants.Get("button", tone, variant), "button %s %s", tone, variant)
			assert.NotNil(t, theme.Variants.Get("badge", tone, variant), "badge %s %s", tone, variant)
		}
	}
	assert.Nil(t, theme.Variants.Get("card", ToneGray, VariantSolid))
}

func TestButtonRendering(t *testing.T) {
	b := NewButton("Save")
	assert.Equal(t, 6, lipgloss.Width(b.View()), "small buttons pad one cell each side")
	assert.Equal(t, 1, lipgloss.Height(b.View()))

	outline := OutlineButton("Save", ToneBlue)
	assert.Equal(t, 3, lipgloss.Height(outline.View()), "outline draws a border")

	loading := SolidButton("Save", ToneGreen).WithLoading(true, "⠋", "Saving")
	assert.Contains(t, loading.View(), "⠋ Saving")
	assert.NotContains(t, loading.View(), "Save ")

	icons := GhostButton("Next", ToneGray).WithIcons("", "→")
	assert.Contains(t, icons.View(), "Next →")
}

func TestButtonPress(t *testing.T) {
	presses := 0
	b := NewButton("Go").WithOnPress(func() { presses++ })

	require.True(t, b.Press())
	b.WithDisabled(true)
	require.False(t, b.Press())
	b.WithDisabled(false).WithLoading(true, "", "")
	require.False(t, b.Press())
	require.Equal(t, 1, presses)
}

func TestBadge(t *testing.T) {
	badge := StatusBadge("Done", "success").WithAffixes("✓", "")
	assert.Contains(t, badge.View(), "✓ Done")
	assert.Equal(t, "Done", badge.Text())

	small := NewBadge("x").WithSize(SizeSm)
	assert.Equal(t, 1, lipgloss.Width(small.View()))
}

func TestTextOverflow(t *testing.T) {
	assert.Equal(t, "abcd…", Truncate("abcdefghij", 5))
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcdefghij", Fit("abcdefghij", 0, OverflowTruncate))
	assert.Equal(t, "one two\nthree", Fit("one two three", 8, OverflowWrap))

	text := NewText("a long line of text").WithOverflow(OverflowTruncate)
	assert.Equal(t, 6, lipgloss.Width(text.ViewWithContext(DefaultContext().WithWidth(6))))
	assert.Equal(t, 4, lipgloss.Width(text.WithWidth(4).ViewWithContext(DefaultContext().WithWidth(6))))
}

func TestStackLayout(t *testing.T) {
	a, b := NewText("a"), NewText("b")

	assert.Equal(t, 2, lipgloss.Height(VStack(a, b).View()))
	assert.Equal(t, 3, lipgloss.Height(VStack(a, b).WithGap(1).View()))
	assert.Equal(t, 4, lipgloss.Height(VStack(a, b).WithGap(2).View()))

	row := HStack(a, b).WithGap(2).View()
	assert.Equal(t, "a  b", strings.TrimRight(row, " "))

	fn := RenderFunc(func() string { return "model" })
	assert.Contains(t, VStack(fn, nil).View(), "model")
}

func TestDivider(t *testing.T) {
	plain := NewDivider().WithLength(10).View()
	assert.Equal(t, strings.Repeat("─", 10), plain)

	labelled := NewDivider().WithLength(10).WithLabel("x", AlignCenter).View()
	assert.Equal(t, 10, lipgloss.Width(labelled))
	assert.Equal(t, "─── x ────", labelled)

	start := NewDivider().WithLength(10).WithLabel("x", AlignStart).View()
	assert.True(t, strings.HasPrefix(start, "── x "))

	assert.Equal(t, 40, lipgloss.Width(NewDivider().View()))
	assert.Equal(t, 3, lipgloss.Height(VerticalDivider(3).View()))
}
