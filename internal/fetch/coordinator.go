// Package fetch serializes snapshot updates so a stale response can never
// overwrite a fresher one.
//
// The UI may fire a new fetch before the previous one returns (a filter
// changed, say). Responses can then arrive out of order. Each fetch takes
// a generation number before it starts, and only the response carrying the
// highest generation seen so far is applied; anything older is dropped.
package fetch

import (
	"sync"

	"github.com/JenishBhuju/Clarity/internal/model"
)

// Coordinator hands out fetch generations and holds the current snapshot.
// Zero value is not usable; call NewCoordinator.
type Coordinator struct {
	mu          sync.Mutex
	snapshot    []model.Transaction
	nextGen     uint64
	appliedGen  uint64
	hasSnapshot bool
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Begin reserves a generation for a fetch that is about to start. Call it
// before issuing the request, then pass the generation to Apply with the
// response.
func (c *Coordinator) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextGen++
	return c.nextGen
}

// Apply installs a fetched snapshot if no newer fetch has been applied.
// It returns false when the response is stale and was dropped.
func (c *Coordinator) Apply(gen uint64, transactions []model.Transaction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasSnapshot && gen <= c.appliedGen {
		return false
	}
	c.appliedGen = gen
	c.snapshot = transactions
	c.hasSnapshot = true
	return true
}

// Stale reports whether a response carrying gen has been superseded,
// either because a newer fetch has started or a newer snapshot is already
// applied. Use it for responses that carry no snapshot to install, like
// errors; successful responses go through Apply, which does its own check.
func (c *Coordinator) Stale(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.nextGen {
		return true
	}
	return c.hasSnapshot && gen <= c.appliedGen
}

// Snapshot returns the current snapshot and whether one has been applied
// yet. The returned slice is the applied one; callers treat it as
// immutable, matching the re-fetch-not-mutate contract.
func (c *Coordinator) Snapshot() ([]model.Transaction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot, c.hasSnapshot
}
