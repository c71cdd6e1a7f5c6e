package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette for the CLI. These are the single source of truth;
// never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: app names, module names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles mapping domain concepts to presentation.
var (
	// StyleNoun styles identifiable nouns (app names, module names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and the root of the file tree.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleMuted styles file descriptions and other secondary text.
	StyleMuted = lipgloss.NewStyle().Faint(true)

	// StyleCreated styles the "created" status of an emitted file.
	StyleCreated = lipgloss.NewStyle().Foreground(ColorGreen)
)

// DisableColor forces plain output regardless of terminal capabilities.
// Styles resolve their colors at render time, so this neutralizes the
// palette above for all subsequent output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
