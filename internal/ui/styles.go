package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for CLI output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - prompts, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40
	MaxContentWidth  = 100
)

var (
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// DetailKeyStyle is for result detail keys
	DetailKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(12)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	HintStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the width of the terminal on stdout, clamped to
// [MinTerminalWidth, MaxContentWidth]. Non-terminals get MaxContentWidth.
func GetTerminalWidth() int {
	return terminalWidth(int(os.Stdout.Fd()))
}

func terminalWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil {
		return MaxContentWidth
	}
	return clampWidth(width)
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether f is connected to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func boxStyle(color lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(clampWidth(width)-2). // Account for border characters
		Padding(0, 1)
}

// TerminalColumns returns the unclamped width of the terminal on stdout,
// or 0 when stdout is not a terminal.
func TerminalColumns() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
