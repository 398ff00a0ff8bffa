package tui

import (
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/prefs"
)

// CategoryGroup is one category's transactions in category view, in the
// user's display order.
type CategoryGroup struct {
	Category     model.Category
	Transactions []model.Transaction
	TotalCents   int64
}

// buildCategoryGroups groups a snapshot by category, ordered by the saved
// preference merged with what the snapshot actually contains. Categories
// new to the data append at the end; saved-but-absent ones are hidden.
func buildCategoryGroups(transactions []model.Transaction, savedOrder []model.Category) []CategoryGroup {
	var observed []model.Category
	byCategory := make(map[model.Category][]model.Transaction)
	for _, t := range transactions {
		if _, seen := byCategory[t.Category]; !seen {
			observed = append(observed, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	display := prefs.MergeWithObserved(savedOrder, observed)

	groups := make([]CategoryGroup, 0, len(display))
	for _, c := range display {
		group := CategoryGroup{Category: c, Transactions: byCategory[c]}
		for _, t := range group.Transactions {
			cents, _ := t.AmountCents()
			group.TotalCents += cents
		}
		groups = append(groups, group)
	}
	return groups
}
