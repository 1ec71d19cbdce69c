package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is the default theme with tighter spacing and status colors
// matching the red/green/blue messages of the status line.
type CompactTheme struct {
	colors map[fyne.ThemeColorName]color.Color
	sizes  map[fyne.ThemeSizeName]float32
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{
		colors: map[fyne.ThemeColorName]color.Color{
			theme.ColorNameSuccess: color.NRGBA{R: 46, G: 160, B: 67, A: 255},
			theme.ColorNameError:   color.NRGBA{R: 198, G: 40, B: 40, A: 255},
			theme.ColorNamePrimary: color.NRGBA{R: 21, G: 101, B: 192, A: 255},
		},
		sizes: map[fyne.ThemeSizeName]float32{
			theme.SizeNamePadding:      3,
			theme.SizeNameInnerPadding: 6,
			theme.SizeNameText:         13,
			theme.SizeNameHeadingText:  16,
		},
	}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := t.colors[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if s, ok := t.sizes[name]; ok {
		return s
	}
	return theme.DefaultTheme().Size(name)
}
