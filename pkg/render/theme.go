// Package render provides the themes used to format TAP report lines.
// A theme is an immutable value: color styles plus one glyph table,
// selected once before streaming begins and never partially mixed.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Glyphs maps the semantic status tags to display strings.
type Glyphs struct {
	Success      string
	Failure      string
	Tap          string
	TapError     string
	GreatSuccess string
	Disaster     string
	Catastrophe  string
	Attention    string
}

// Theme defines colors and glyphs for report rendering.
type Theme struct {
	Name    string
	Header  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Glyphs  Glyphs

	// Display width of the widest glyph in the table; glyphs are padded
	// to this width so the separator column stays aligned within a run.
	prefixWidth int
}

func newTheme(name string, glyphs Glyphs) Theme {
	return Theme{
		Name:        name,
		Header:      lipgloss.NewStyle().Bold(true),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Failure:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Glyphs:      glyphs,
		prefixWidth: maxGlyphWidth(glyphs),
	}
}

// EmojiTheme returns the default symbolic theme.
func EmojiTheme() Theme {
	return newTheme("emoji", Glyphs{
		Success:      "✅",
		Failure:      "❌",
		Tap:          "🚰",
		TapError:     "🚱",
		GreatSuccess: "❤️",
		Disaster:     "🔥",
		Catastrophe:  "💥",
		Attention:    "⚠️",
	})
}

// ASCIITheme returns the terminal-safe emoticon theme.
func ASCIITheme() Theme {
	return newTheme("ascii", Glyphs{
		Success:      ":-)",
		Failure:      ":-(",
		Tap:          "^.^",
		TapError:     "o.O",
		GreatSuccess: "<3",
		Disaster:     ">.<",
		Catastrophe:  "v.v",
		Attention:    "!!",
	})
}

// ThemeByName returns a theme by name, defaulting to EmojiTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "ascii":
		return ASCIITheme()
	default:
		return EmojiTheme()
	}
}

// Monochrome strips all color styles from a theme. The glyph table is
// untouched — color resolution never changes what gets counted or printed.
func Monochrome(t Theme) Theme {
	t.Header = lipgloss.NewStyle()
	t.Success = lipgloss.NewStyle()
	t.Failure = lipgloss.NewStyle()
	t.Error = lipgloss.NewStyle()
	t.Muted = lipgloss.NewStyle()
	return t
}

// Prefix formats a report line as "<glyph>  | <text>". Glyphs in one table
// differ in terminal cell width, so the glyph is padded to the table's
// widest entry before the separator.
func (t Theme) Prefix(glyph, text string) string {
	pad := t.prefixWidth - runewidth.StringWidth(glyph)
	if pad < 0 {
		pad = 0
	}
	return glyph + strings.Repeat(" ", pad) + "  | " + text
}

func maxGlyphWidth(g Glyphs) int {
	w := 0
	for _, s := range []string{
		g.Success, g.Failure, g.Tap, g.TapError,
		g.GreatSuccess, g.Disaster, g.Catastrophe, g.Attention,
	} {
		if gw := runewidth.StringWidth(s); gw > w {
			w = gw
		}
	}
	return w
}
