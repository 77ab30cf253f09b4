package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - lime green accent theme.
const (
	ColorLime     = "154" // Primary accent (#AFFF00) - bright lime green
	ColorLimeDim  = "106" // Dimmed lime for secondary accents
	ColorWhite    = "255" // Headers, important text
	ColorGray     = "245" // Secondary text, labels
	ColorDarkGray = "238" // Separators, hints
	ColorRed      = "196" // Errors
)

// Styles holds the styles used by the interactive picker.
type Styles struct {
	Prompt   lipgloss.Style // input prompt
	Match    lipgloss.Style // matched characters within a candidate
	Selected lipgloss.Style // the candidate under the cursor
	Cursor   lipgloss.Style // cursor marker
	Counter  lipgloss.Style // "12/345" match counter
	Dim      lipgloss.Style // hints, non-selected text
	Error    lipgloss.Style
}

// DefaultStyles returns styled components for TTY rendering.
func DefaultStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Match:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Counter:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle(),
		Match:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle(),
		Counter:  lipgloss.NewStyle(),
		Dim:      lipgloss.NewStyle(),
		Error:    lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
