package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ColorCyan is used for identifiable nouns: widget names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	styleCheck = lipgloss.NewStyle().Foreground(ColorGreenCheck)

	styleBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray).
			Padding(0, 2)
)

// Banner renders the greeting shown before prompting.
func Banner(displayName, version string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(displayName))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("version %s", version)))
	return styleBanner.Render(b.String())
}

// FormatCreated renders one line of the created-files summary.
func FormatCreated(path string) string {
	return fmt.Sprintf("  %s %s", styleCheck.Render("✔"), StyleNoun.Render(path))
}
