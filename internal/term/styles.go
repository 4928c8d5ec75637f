package term

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles for console output.
var (
	StageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// Success renders a confirmation line, styled only when a human is watching.
func Success(msg string) string {
	if !IsStyled() {
		return msg
	}
	return SuccessStyle.Render(SymbolCheck + " " + msg)
}

// Failure renders an error line, styled only when a human is watching.
func Failure(msg string) string {
	if !IsStyled() {
		return msg
	}
	return ErrorStyle.Render(SymbolCross + " " + msg)
}
