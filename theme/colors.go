// Package theme derives color tokens from the dark-mode flag and keeps the
// user's light/dark/auto choice across runs.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tokens are the semantic color names views use. They are a pure function
// of whether dark mode is active.
type Tokens struct {
	Track     string // progress track background
	Text      string // body text class
	TextMuted string // secondary text class
	Muted     string // inactive pips, separators
	Negative  string // overtime, errors
}

var (
	darkTokens = Tokens{
		Track:     "grey-9",
		Text:      "text-grey-6",
		TextMuted: "text-grey-8",
		Muted:     "grey-7",
		Negative:  "negative-dark",
	}
	lightTokens = Tokens{
		Track:     "grey-4",
		Text:      "text-grey-9",
		TextMuted: "text-grey-6",
		Muted:     "grey-5",
		Negative:  "negative",
	}
)

// Colors returns the token set for the given dark-mode flag.
func Colors(dark bool) Tokens {
	if dark {
		return darkTokens
	}
	return lightTokens
}

var palette = map[string]lipgloss.Color{
	"grey-4":        lipgloss.Color("#bdbdbd"),
	"grey-5":        lipgloss.Color("#9e9e9e"),
	"grey-6":        lipgloss.Color("#757575"),
	"grey-7":        lipgloss.Color("#616161"),
	"grey-8":        lipgloss.Color("#424242"),
	"grey-9":        lipgloss.Color("#212121"),
	"negative":      lipgloss.Color("#c10015"),
	"negative-dark": lipgloss.Color("#ff6b6b"),
}

// Resolve maps a token name to a terminal color. The "text-" prefix used by
// text tokens is ignored. Unknown names resolve to the terminal default.
func Resolve(token string) lipgloss.Color {
	if c, ok := palette[strings.TrimPrefix(token, "text-")]; ok {
		return c
	}
	return lipgloss.Color("")
}

// Styles are lipgloss styles built from a token set.
type Styles struct {
	Track     lipgloss.Style
	Text      lipgloss.Style
	TextMuted lipgloss.Style
	Muted     lipgloss.Style
	Negative  lipgloss.Style
}

func NewStyles(t Tokens) Styles {
	return Styles{
		Track:     lipgloss.NewStyle().Foreground(Resolve(t.Track)),
		Text:      lipgloss.NewStyle().Foreground(Resolve(t.Text)),
		TextMuted: lipgloss.NewStyle().Foreground(Resolve(t.TextMuted)),
		Muted:     lipgloss.NewStyle().Foreground(Resolve(t.Muted)),
		Negative:  lipgloss.NewStyle().Foreground(Resolve(t.Negative)).Bold(true),
	}
}
