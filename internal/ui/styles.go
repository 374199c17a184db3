package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft blue #7AA2F7): Highlights, SQL, file paths
// - Muted (gray): Secondary info, timestamps, hints
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#7AA2F7"

var (
	// Accent style for SQL text, file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, timestamps
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

// accentColor is the active accent, empty when the user disabled accents.
var accentColor = defaultAccent

// ConfigureTheme applies the configured accent color to the shared styles.
// Accepts ANSI codes ("0" to "255"), hex colors ("#RRGGBB"), or "none" to
// disable accent coloring. Invalid values are ignored.
func ConfigureTheme(accent string) {
	if accent == "" {
		return
	}
	if strings.EqualFold(accent, "none") {
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}
	color, ok := normalizeAccentColor(accent)
	if !ok {
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color and whether one is set.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return "", false
	}
	return accentColor, true
}

// normalizeAccentColor validates an accent value from config.
func normalizeAccentColor(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		if len(v) != 7 {
			return "", false
		}
		for _, c := range v[1:] {
			switch {
			case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
			default:
				return "", false
			}
		}
		return v, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return v, true
}
