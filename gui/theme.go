//go:build gui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"

	"freetimer/theme"
)

// tokenTheme paints fyne widgets from the timer's color tokens.
type tokenTheme struct {
	dark bool
}

var (
	darkBackground  = color.RGBA{18, 18, 18, 255}
	lightBackground = color.RGBA{250, 250, 250, 255}
)

func tokenColor(token string) color.Color {
	c, err := colorful.Hex(string(theme.Resolve(token)))
	if err != nil {
		return nil
	}
	return c
}

func (t *tokenTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return fynetheme.VariantDark
	}
	return fynetheme.VariantLight
}

func (t *tokenTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	tok := theme.Colors(t.dark)
	var c color.Color
	switch name {
	case fynetheme.ColorNameBackground:
		if t.dark {
			return darkBackground
		}
		return lightBackground
	case fynetheme.ColorNameForeground:
		c = tokenColor(tok.Text)
	case fynetheme.ColorNameDisabled, fynetheme.ColorNamePlaceHolder:
		c = tokenColor(tok.TextMuted)
	case fynetheme.ColorNameSeparator:
		c = tokenColor(tok.Muted)
	case fynetheme.ColorNameInputBackground, fynetheme.ColorNameButton:
		c = tokenColor(tok.Track)
	case fynetheme.ColorNameError:
		c = tokenColor(tok.Negative)
	}
	if c != nil {
		return c
	}
	return fynetheme.DefaultTheme().Color(name, t.variant())
}

func (t *tokenTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *tokenTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *tokenTheme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}
