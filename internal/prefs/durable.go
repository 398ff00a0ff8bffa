package prefs

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/limits"
	"github.com/JenishBhuju/Clarity/internal/model"
)

// Tokens is the saved authentication state for the backend.
type Tokens struct {
	Username string    `json:"username"`
	Access   string    `json:"access"`
	Refresh  string    `json:"refresh"`
	SavedAt  time.Time `json:"saved_at"`
}

// DurableStore persists state that survives across sessions: auth tokens,
// spending limits and the category display order. Each concern gets its
// own file so clearing one never touches the others.
type DurableStore struct {
	dir string
}

// NewDurableStore creates a durable store rooted at the given data dir.
func NewDurableStore(dir string) *DurableStore {
	return &DurableStore{dir: dir}
}

func (s *DurableStore) tokensPath() string { return filepath.Join(s.dir, "tokens.json") }
func (s *DurableStore) limitsPath() string { return filepath.Join(s.dir, "limits.json") }
func (s *DurableStore) orderPath() string  { return filepath.Join(s.dir, "category_order.json") }

// LoadTokens returns the saved token pair, or ErrNotLoggedIn when none
// exists.
func (s *DurableStore) LoadTokens() (*Tokens, error) {
	var tokens Tokens
	found, err := readJSONFile(s.tokensPath(), &tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokens: %w", err)
	}
	if !found || tokens.Access == "" {
		return nil, common.ErrNotLoggedIn
	}
	return &tokens, nil
}

// SaveTokens stores the token pair received from a successful login.
func (s *DurableStore) SaveTokens(tokens Tokens) error {
	tokens.SavedAt = time.Now()
	if err := writeJSONFile(s.tokensPath(), tokens); err != nil {
		return fmt.Errorf("failed to save tokens: %w", err)
	}
	return nil
}

// ClearTokens removes the saved token pair. Called on logout.
func (s *DurableStore) ClearTokens() error {
	return removeFile(s.tokensPath())
}

// LoadLimits returns the saved spending limits. Absent limits come back
// zero, which means both windows are disabled.
func (s *DurableStore) LoadLimits() (limits.Limits, error) {
	var l limits.Limits
	if _, err := readJSONFile(s.limitsPath(), &l); err != nil {
		return limits.Limits{}, fmt.Errorf("failed to load spending limits: %w", err)
	}
	return l, nil
}

// SaveLimits stores user-set spending limits. Only an explicit user save
// calls this.
func (s *DurableStore) SaveLimits(l limits.Limits) error {
	if l.DailyCents < 0 || l.WeeklyCents < 0 {
		return fmt.Errorf("spending limits must be non-negative")
	}
	if err := writeJSONFile(s.limitsPath(), l); err != nil {
		return fmt.Errorf("failed to save spending limits: %w", err)
	}
	return nil
}

// LoadOrder returns the saved category display order. The list may contain
// tags absent from current data; MergeWithObserved hides those at render
// time without rewriting the saved preference.
func (s *DurableStore) LoadOrder() ([]model.Category, error) {
	var order []model.Category
	if _, err := readJSONFile(s.orderPath(), &order); err != nil {
		return nil, fmt.Errorf("failed to load category order: %w", err)
	}
	return order, nil
}

// SaveOrder stores the category display order.
func (s *DurableStore) SaveOrder(order []model.Category) error {
	if err := writeJSONFile(s.orderPath(), order); err != nil {
		return fmt.Errorf("failed to save category order: %w", err)
	}
	return nil
}
