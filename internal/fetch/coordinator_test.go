package fetch

import (
	"sync"
	"testing"

	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(ids ...int64) []model.Transaction {
	out := make([]model.Transaction, len(ids))
	for i, id := range ids {
		out[i] = model.Transaction{ID: id}
	}
	return out
}

func TestCoordinatorAppliesInOrder(t *testing.T) {
	c := NewCoordinator()

	_, ok := c.Snapshot()
	assert.False(t, ok, "no snapshot before the first apply")

	gen1 := c.Begin()
	gen2 := c.Begin()
	assert.Greater(t, gen2, gen1)

	require.True(t, c.Apply(gen1, snapshotOf(1)))
	require.True(t, c.Apply(gen2, snapshotOf(2)))

	snapshot, ok := c.Snapshot()
	require.True(t, ok)
	assert.Equal(t, snapshotOf(2), snapshot)
}

func TestCoordinatorDropsStaleResponse(t *testing.T) {
	c := NewCoordinator()

	// Two fetches race; the newer one returns first.
	gen1 := c.Begin()
	gen2 := c.Begin()

	require.True(t, c.Apply(gen2, snapshotOf(2)))
	assert.False(t, c.Apply(gen1, snapshotOf(1)), "stale response must be dropped")

	snapshot, ok := c.Snapshot()
	require.True(t, ok)
	assert.Equal(t, snapshotOf(2), snapshot, "newer snapshot survives")
}

func TestCoordinatorStale(t *testing.T) {
	c := NewCoordinator()

	gen1 := c.Begin()
	assert.False(t, c.Stale(gen1), "the only in-flight fetch is current")

	gen2 := c.Begin()
	assert.True(t, c.Stale(gen1), "starting a newer fetch supersedes the old one")
	assert.False(t, c.Stale(gen2))

	require.True(t, c.Apply(gen2, snapshotOf(2)))
	assert.True(t, c.Stale(gen2), "an applied generation is no longer current")
}

func TestCoordinatorRejectsDuplicateApply(t *testing.T) {
	c := NewCoordinator()

	gen := c.Begin()
	require.True(t, c.Apply(gen, snapshotOf(1)))
	assert.False(t, c.Apply(gen, snapshotOf(9)))
}

func TestCoordinatorFirstApplyAlwaysWins(t *testing.T) {
	c := NewCoordinator()

	gen := c.Begin()
	assert.True(t, c.Apply(gen, nil), "an empty snapshot still counts as applied")

	snapshot, ok := c.Snapshot()
	assert.True(t, ok)
	assert.Empty(t, snapshot)
}

func TestCoordinatorConcurrentFetches(t *testing.T) {
	c := NewCoordinator()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			gen := c.Begin()
			c.Apply(gen, snapshotOf(n))
		}(int64(i))
	}
	wg.Wait()

	_, ok := c.Snapshot()
	assert.True(t, ok)
}
