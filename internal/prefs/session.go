package prefs

import (
	"fmt"
	"path/filepath"

	"github.com/JenishBhuju/Clarity/internal/model"
)

// ViewMode selects how the transaction list is displayed.
type ViewMode string

const (
	// ViewTable shows a flat chronological table.
	ViewTable ViewMode = "table"
	// ViewCategory groups transactions by category.
	ViewCategory ViewMode = "category"
)

// FilterState holds the four filter fields sent with every fetch. Empty
// means "no filter on this field"; fields are persisted with omitempty so
// clearing a filter removes its stored entry rather than writing "".
type FilterState struct {
	Type     string `json:"type,omitempty"`
	Category string `json:"category,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// Validate rejects filter values the backend would ignore or choke on.
func (f FilterState) Validate() error {
	if f.Type != "" && f.Type != string(model.TypeIncome) && f.Type != string(model.TypeExpense) {
		return fmt.Errorf("filter type must be income or expense, got %q", f.Type)
	}
	if f.Category != "" && !model.Category(f.Category).Valid() {
		return fmt.Errorf("unknown filter category %q", f.Category)
	}
	return nil
}

// SessionState is the session-scoped view state: current view mode and
// filters. It is cleared when the session ends (logout).
type SessionState struct {
	Mode   ViewMode    `json:"mode,omitempty"`
	Filter FilterState `json:"filter,omitempty"`
}

// SessionStore persists SessionState, written synchronously on every change.
type SessionStore struct {
	path string
}

// NewSessionStore creates a session store rooted at the given data dir.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, "session.json")}
}

// Load returns the saved session state, or defaults (table mode, no
// filters) when nothing is saved yet.
func (s *SessionStore) Load() (SessionState, error) {
	state := SessionState{Mode: ViewTable}
	found, err := readJSONFile(s.path, &state)
	if err != nil {
		return SessionState{Mode: ViewTable}, fmt.Errorf("failed to load session state: %w", err)
	}
	if !found || state.Mode == "" {
		state.Mode = ViewTable
	}
	return state, nil
}

// Save writes the session state to disk.
func (s *SessionStore) Save(state SessionState) error {
	if err := writeJSONFile(s.path, state); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

// ClearFilters resets all four filter fields and persists the result.
func (s *SessionStore) ClearFilters() error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	state.Filter = FilterState{}
	return s.Save(state)
}

// Clear removes the session file entirely. Called on logout.
func (s *SessionStore) Clear() error {
	return removeFile(s.path)
}
