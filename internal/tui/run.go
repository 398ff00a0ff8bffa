package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until it exits. It returns the
// error that ended the session, notably ErrUnauthorized when the backend
// rejected the token mid-session.
func Run(cfg Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dashboard: %w", err)
	}

	program := tea.NewProgram(m)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	if finalModel, ok := final.(Model); ok {
		return finalModel.Err()
	}
	return nil
}
