package prefs

import "github.com/JenishBhuju/Clarity/internal/model"

// Reorder moves one category to targetIndex, preserving the relative order
// of everything else. Standard array-move semantics: remove at the source
// index, insert at the destination. Unknown categories and out-of-range
// targets are clamped rather than rejected; a bad drag should never lose
// the list.
func Reorder(current []model.Category, moved model.Category, targetIndex int) []model.Category {
	source := -1
	for i, c := range current {
		if c == moved {
			source = i
			break
		}
	}
	if source == -1 {
		out := make([]model.Category, len(current))
		copy(out, current)
		return out
	}

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex >= len(current) {
		targetIndex = len(current) - 1
	}

	out := make([]model.Category, 0, len(current))
	out = append(out, current[:source]...)
	out = append(out, current[source+1:]...)
	out = append(out[:targetIndex], append([]model.Category{moved}, out[targetIndex:]...)...)
	return out
}

// MergeWithObserved produces the visible display order for a snapshot:
// saved categories that are present in the data keep their saved relative
// order, then categories new to the data follow in first-observed order.
// Every observed category appears exactly once; saved-but-absent ones are
// hidden without being purged from the saved list.
func MergeWithObserved(saved, observed []model.Category) []model.Category {
	present := make(map[model.Category]bool, len(observed))
	for _, c := range observed {
		present[c] = true
	}

	display := make([]model.Category, 0, len(observed))
	inDisplay := make(map[model.Category]bool, len(observed))
	for _, c := range saved {
		if present[c] && !inDisplay[c] {
			display = append(display, c)
			inDisplay[c] = true
		}
	}
	for _, c := range observed {
		if !inDisplay[c] {
			display = append(display, c)
			inDisplay[c] = true
		}
	}
	return display
}
