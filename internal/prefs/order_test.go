package prefs

import (
	"testing"

	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/stretchr/testify/assert"
)

func cats(tags ...string) []model.Category {
	out := make([]model.Category, len(tags))
	for i, tag := range tags {
		out[i] = model.Category(tag)
	}
	return out
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name    string
		current []model.Category
		moved   model.Category
		target  int
		want    []model.Category
	}{
		{
			name:    "move forward",
			current: cats("food", "transport", "housing"),
			moved:   "food",
			target:  2,
			want:    cats("transport", "housing", "food"),
		},
		{
			name:    "move backward",
			current: cats("food", "transport", "housing"),
			moved:   "housing",
			target:  0,
			want:    cats("housing", "food", "transport"),
		},
		{
			name:    "move to same position",
			current: cats("food", "transport"),
			moved:   "food",
			target:  0,
			want:    cats("food", "transport"),
		},
		{
			name:    "unknown category is a no-op",
			current: cats("food", "transport"),
			moved:   "gift",
			target:  0,
			want:    cats("food", "transport"),
		},
		{
			name:    "target past the end is clamped",
			current: cats("food", "transport", "housing"),
			moved:   "food",
			target:  99,
			want:    cats("transport", "housing", "food"),
		},
		{
			name:    "negative target is clamped",
			current: cats("food", "transport"),
			moved:   "transport",
			target:  -3,
			want:    cats("transport", "food"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reorder(tt.current, tt.moved, tt.target))
		})
	}
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	current := cats("food", "transport", "housing")
	Reorder(current, "housing", 0)
	assert.Equal(t, cats("food", "transport", "housing"), current)
}

func TestMergeWithObserved(t *testing.T) {
	tests := []struct {
		name     string
		saved    []model.Category
		observed []model.Category
		want     []model.Category
	}{
		{
			name:     "saved order wins, new categories append",
			saved:    cats("food", "housing"),
			observed: cats("housing", "food", "gift"),
			want:     cats("food", "housing", "gift"),
		},
		{
			name:     "saved categories absent from data are hidden",
			saved:    cats("education", "food"),
			observed: cats("food"),
			want:     cats("food"),
		},
		{
			name:     "no saved order keeps first-observed order",
			saved:    nil,
			observed: cats("transport", "food"),
			want:     cats("transport", "food"),
		},
		{
			name:     "no observed categories yields empty order",
			saved:    cats("food"),
			observed: nil,
			want:     cats(),
		},
		{
			name:     "duplicates in saved list collapse",
			saved:    cats("food", "food", "housing"),
			observed: cats("housing", "food"),
			want:     cats("food", "housing"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeWithObserved(tt.saved, tt.observed)
			assert.Equal(t, tt.want, got)

			// Every observed category appears exactly once.
			seen := map[model.Category]int{}
			for _, c := range got {
				seen[c]++
			}
			for _, c := range tt.observed {
				assert.Equal(t, 1, seen[c], "category %s", c)
			}
		})
	}
}
