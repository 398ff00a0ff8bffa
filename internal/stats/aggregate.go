// Package stats computes derived aggregates from a transaction snapshot.
//
// Every function here is pure: given the same snapshot it returns the same
// result, and nothing is cached between calls. The client re-fetches the
// full list after every mutation, so derived state is always recomputed
// from scratch rather than patched incrementally.
package stats

import (
	"sort"

	"github.com/JenishBhuju/Clarity/internal/model"
)

// Totals holds the summed amounts for a snapshot, in cents.
type Totals struct {
	Income  int64
	Expense int64
	Net     int64
}

// DatePoint is one day of the time series, in cents. Days with no
// transactions are not synthesized.
type DatePoint struct {
	Date    string
	Income  int64
	Expense int64
}

// CategoryTotal is one category's summed amount for a single type, in cents.
type CategoryTotal struct {
	Category model.Category
	Total    int64
}

// cents returns the transaction's amount, treating malformed amounts as
// zero. One corrupt record must not abort the whole aggregation.
func cents(t model.Transaction) int64 {
	c, _ := t.AmountCents()
	return c
}

// TotalsByType sums amounts per type. Net is income minus expense. All
// three are zero on an empty snapshot.
func TotalsByType(transactions []model.Transaction) Totals {
	var totals Totals
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			totals.Income += cents(t)
		case model.TypeExpense:
			totals.Expense += cents(t)
		}
	}
	totals.Net = totals.Income - totals.Expense
	return totals
}

// TimeSeries groups amounts by exact date string, ordered by ascending
// date. ISO dates sort lexically, so plain string comparison is date order.
func TimeSeries(transactions []model.Transaction) []DatePoint {
	byDate := make(map[string]*DatePoint)
	for _, t := range transactions {
		point, ok := byDate[t.Date]
		if !ok {
			point = &DatePoint{Date: t.Date}
			byDate[t.Date] = point
		}
		switch t.Type {
		case model.TypeIncome:
			point.Income += cents(t)
		case model.TypeExpense:
			point.Expense += cents(t)
		}
	}

	series := make([]DatePoint, 0, len(byDate))
	for _, point := range byDate {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// CategoryBreakdown sums amounts by category for the given type, sorted
// descending by total. Ties keep first-encountered category order. Only
// categories with at least one matching transaction appear.
func CategoryBreakdown(transactions []model.Transaction, txType model.TransactionType) []CategoryTotal {
	totals := make(map[model.Category]int64)
	var order []model.Category
	for _, t := range transactions {
		if t.Type != txType {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += cents(t)
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		breakdown = append(breakdown, CategoryTotal{Category: c, Total: totals[c]})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})
	return breakdown
}
