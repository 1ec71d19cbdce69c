package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("padding = %v, expected 3", got)
	}
	if got, want := th.Size(theme.SizeNameInlineIcon), theme.DefaultTheme().Size(theme.SizeNameInlineIcon); got != want {
		t.Errorf("inline icon size = %v, expected default %v", got, want)
	}

	errColor := color.NRGBA{R: 198, G: 40, B: 40, A: 255}
	if got := th.Color(theme.ColorNameError, theme.VariantLight); got != errColor {
		t.Errorf("error color = %v, expected %v", got, errColor)
	}
	if got, want := th.Color(theme.ColorNameShadow, theme.VariantDark), theme.DefaultTheme().Color(theme.ColorNameShadow, theme.VariantDark); got != want {
		t.Errorf("shadow color = %v, expected default %v", got, want)
	}
}
