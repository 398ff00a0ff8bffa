package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/limits"
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/prefs"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	helpStyle     = lipgloss.NewStyle().Foreground(cli.SubtleColor)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Clarity"))
	b.WriteString("  ")
	b.WriteString(m.summaryLine())
	b.WriteString("\n")

	if banner := m.limitBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	if m.toast != "" {
		b.WriteString(cli.FormatMilestone(m.toast))
		b.WriteString("\n")
	}
	if m.lastError != nil {
		b.WriteString(cli.FormatError(m.lastError.Error()))
		b.WriteString("\n")
	}
	if filter := m.filterLine(); filter != "" {
		b.WriteString(filter)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(helpStyle.Render("Loading…"))
	case m.session.Mode == prefs.ViewCategory:
		b.WriteString(m.categoryView())
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) summaryLine() string {
	return fmt.Sprintf("income %s  expense %s  net %s",
		cli.IncomeStyle.Render(model.FormatCents(m.totals.Income)),
		cli.ExpenseStyle.Render(model.FormatCents(m.totals.Expense)),
		model.FormatCents(m.totals.Net))
}

// limitBanner surfaces the worst active limit state, nothing when both
// windows are ok.
func (m Model) limitBanner() string {
	daily, weekly := m.report.Daily, m.report.Weekly

	worst := daily
	label := "Daily"
	if rank(weekly.Level) > rank(daily.Level) {
		worst = weekly
		label = "Weekly"
	}

	switch worst.Level {
	case limits.LevelOver:
		return cli.FormatError(fmt.Sprintf("%s limit exceeded: %s of %s (%.0f%%)",
			label, model.FormatCents(worst.SpendCents), model.FormatCents(worst.LimitCents), worst.Percent))
	case limits.LevelWarning:
		return cli.FormatWarning(fmt.Sprintf("%s spend at %.0f%% of limit", label, worst.Percent))
	default:
		return ""
	}
}

func rank(level limits.Level) int {
	switch level {
	case limits.LevelOver:
		return 2
	case limits.LevelWarning:
		return 1
	default:
		return 0
	}
}

func (m Model) filterLine() string {
	f := m.session.Filter
	if f.IsZero() {
		return ""
	}

	var parts []string
	if f.Type != "" {
		parts = append(parts, "type="+f.Type)
	}
	if f.Category != "" {
		parts = append(parts, "category="+f.Category)
	}
	if f.DateFrom != "" {
		parts = append(parts, "from="+f.DateFrom)
	}
	if f.DateTo != "" {
		parts = append(parts, "to="+f.DateTo)
	}
	return helpStyle.Render("filters: " + strings.Join(parts, " "))
}

func (m Model) categoryView() string {
	if len(m.groups) == 0 {
		return helpStyle.Render("No transactions.")
	}

	var b strings.Builder
	for i, group := range m.groups {
		line := fmt.Sprintf("%-20s %3d transactions  %12s",
			group.Category.Label(), len(group.Transactions), model.FormatCents(group.TotalCents))
		if i == m.cursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	if m.session.Mode == prefs.ViewCategory {
		return "m table view · t type filter · c clear filters · J/K move category · r refresh · q quit"
	}
	return "m category view · t type filter · c clear filters · r refresh · q quit"
}
