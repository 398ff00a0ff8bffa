package tui

import "github.com/JenishBhuju/Clarity/internal/model"

// snapshotMsg carries a completed fetch. The generation ties the response
// back to the fetch that produced it so stale responses can be dropped.
type snapshotMsg struct {
	err          error
	transactions []model.Transaction
	generation   uint64
}

// toastExpiredMsg dismisses the milestone toast after its display window.
type toastExpiredMsg struct{}
