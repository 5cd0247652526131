package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/kaur-ai/LabelImage/internal/config"
)

// LabellerTheme applies the configured dark palette over the default theme.
type LabellerTheme struct {
	scheme config.Theme
}

var _ fyne.Theme = (*LabellerTheme)(nil)

// NewTheme creates a theme from the configured color scheme.
func NewTheme(scheme config.Theme) *LabellerTheme {
	return &LabellerTheme{scheme: scheme}
}

func (t *LabellerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		if c, err := config.ParseHexColor(t.scheme.Background); err == nil {
			return c
		}
	case theme.ColorNameForeground:
		if c, err := config.ParseHexColor(t.scheme.Text); err == nil {
			return c
		}
	case theme.ColorNameInputBackground:
		if c, err := config.ParseHexColor(t.scheme.Card); err == nil {
			return c
		}
	case theme.ColorNamePlaceHolder:
		if c, err := config.ParseHexColor(t.scheme.Muted); err == nil {
			return c
		}
	case theme.ColorNamePrimary:
		return t.scheme.AccentColor(2) // the mint accent, as the original's action button
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (t *LabellerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *LabellerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *LabellerTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
