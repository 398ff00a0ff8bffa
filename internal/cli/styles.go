// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JenishBhuju/Clarity/internal/limits"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7C9EF5")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// ToastStyle frames milestone celebration messages.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SuccessColor).
			Padding(0, 2).
			Bold(true)
)

// Icons.
const (
	SuccessIcon   = "✓"
	ErrorIcon     = "✗"
	WarningIcon   = "⚠"
	MilestoneIcon = "🎉"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}

// FormatMilestone formats a milestone celebration toast.
func FormatMilestone(message string) string {
	return ToastStyle.Render(MilestoneIcon + " " + message)
}

// FormatLimitMeter renders one spending-limit window as a fixed-width
// meter colored by its level, e.g. "[████████──] 85% (85.00 of 100.00)".
func FormatLimitMeter(label string, status limits.WindowStatus) string {
	if status.LimitCents <= 0 {
		return fmt.Sprintf("%s: %s", label, SubtleStyle.Render("no limit set"))
	}

	const width = 20
	filled := int(status.Percent / 100 * width)
	if filled > width {
		filled = width
	}
	meter := "[" + strings.Repeat("█", filled) + strings.Repeat("─", width-filled) + "]"

	style := SuccessStyle
	switch status.Level {
	case limits.LevelWarning:
		style = WarningStyle
	case limits.LevelOver:
		style = ErrorStyle
	}

	return fmt.Sprintf("%s: %s %.0f%%", label, style.Render(meter), status.Percent)
}
