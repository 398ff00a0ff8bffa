package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/limits"
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreDefaults(t *testing.T) {
	store := NewSessionStore(t.TempDir())

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ViewTable, state.Mode)
	assert.True(t, state.Filter.IsZero())
}

func TestSessionStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewSessionStore(dir)

	saved := SessionState{
		Mode: ViewCategory,
		Filter: FilterState{
			Type:     "expense",
			Category: "food",
			DateFrom: "2024-01-01",
			DateTo:   "2024-01-31",
		},
	}
	require.NoError(t, store.Save(saved))

	// A fresh store over the same dir sees the saved state, like a reload.
	reloaded, err := NewSessionStore(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, saved, reloaded)
}

func TestSessionStoreClearFilters(t *testing.T) {
	dir := t.TempDir()
	store := NewSessionStore(dir)

	require.NoError(t, store.Save(SessionState{
		Mode:   ViewCategory,
		Filter: FilterState{Type: "expense", DateFrom: "2024-01-01"},
	}))
	require.NoError(t, store.ClearFilters())

	state, err := store.Load()
	require.NoError(t, err)
	assert.True(t, state.Filter.IsZero())
	assert.Equal(t, ViewCategory, state.Mode, "clearing filters keeps the view mode")

	// Cleared filter fields are removed from the file, not stored as "".
	data, err := os.ReadFile(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "date_from")
}

func TestSessionStoreClear(t *testing.T) {
	dir := t.TempDir()
	store := NewSessionStore(dir)

	require.NoError(t, store.Save(SessionState{Mode: ViewCategory}))
	require.NoError(t, store.Clear())

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ViewTable, state.Mode)

	// Clearing an already-cleared store is fine.
	assert.NoError(t, store.Clear())
}

func TestFilterStateValidate(t *testing.T) {
	assert.NoError(t, FilterState{}.Validate())
	assert.NoError(t, FilterState{Type: "income", Category: "salary"}.Validate())
	assert.Error(t, FilterState{Type: "transfer"}.Validate())
	assert.Error(t, FilterState{Category: "crypto"}.Validate())
}

func TestDurableStoreTokens(t *testing.T) {
	store := NewDurableStore(t.TempDir())

	_, err := store.LoadTokens()
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)

	require.NoError(t, store.SaveTokens(Tokens{
		Username: "alice",
		Access:   "access-token",
		Refresh:  "refresh-token",
	}))

	tokens, err := store.LoadTokens()
	require.NoError(t, err)
	assert.Equal(t, "alice", tokens.Username)
	assert.Equal(t, "access-token", tokens.Access)
	assert.False(t, tokens.SavedAt.IsZero())

	require.NoError(t, store.ClearTokens())
	_, err = store.LoadTokens()
	assert.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestDurableStoreLimits(t *testing.T) {
	store := NewDurableStore(t.TempDir())

	// Absent limits mean both windows disabled.
	l, err := store.LoadLimits()
	require.NoError(t, err)
	assert.Zero(t, l.DailyCents)
	assert.Zero(t, l.WeeklyCents)

	require.NoError(t, store.SaveLimits(limits.Limits{DailyCents: 5000, WeeklyCents: 30000}))
	l, err = store.LoadLimits()
	require.NoError(t, err)
	assert.Equal(t, int64(5000), l.DailyCents)
	assert.Equal(t, int64(30000), l.WeeklyCents)

	assert.Error(t, store.SaveLimits(limits.Limits{DailyCents: -1}))
}

func TestDurableStoreOrder(t *testing.T) {
	store := NewDurableStore(t.TempDir())

	order, err := store.LoadOrder()
	require.NoError(t, err)
	assert.Empty(t, order)

	want := []model.Category{model.CategoryFood, model.CategoryHousing}
	require.NoError(t, store.SaveOrder(want))
	order, err = store.LoadOrder()
	require.NoError(t, err)
	assert.Equal(t, want, order)
}

func TestDurableStoreFilesAreIndependent(t *testing.T) {
	store := NewDurableStore(t.TempDir())

	require.NoError(t, store.SaveTokens(Tokens{Username: "alice", Access: "a", Refresh: "r"}))
	require.NoError(t, store.SaveLimits(limits.Limits{DailyCents: 100}))
	require.NoError(t, store.SaveOrder([]model.Category{model.CategoryGift}))

	// Logout clears tokens but leaves limits and order alone.
	require.NoError(t, store.ClearTokens())

	l, err := store.LoadLimits()
	require.NoError(t, err)
	assert.Equal(t, int64(100), l.DailyCents)

	order, err := store.LoadOrder()
	require.NoError(t, err)
	assert.Len(t, order, 1)
}
