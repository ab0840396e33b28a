// Package components holds the presentational pieces shared by the inkui widgets:
// a theme built from go-colorful ramps, and Button, Badge, Text, Stack and Divider
// primitives rendered with lipgloss.
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := components.SolidButton("Save", components.ToneBlue).ViewWithContext(ctx)
//
// View() renders with the default theme.
//
// Buttons and badges take a Tone (gray, blue, green, orange, red) and a Variant
// (solid, subtle, outline, ghost). Their styling lives in the theme's VariantRegistry,
// so a custom theme can restyle them without touching component code.
package components
