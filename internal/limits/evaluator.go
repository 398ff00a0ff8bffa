// Package limits evaluates daily and weekly spend against user-set caps.
package limits

import (
	"time"

	"github.com/JenishBhuju/Clarity/internal/model"
)

// Limits holds the user-configured spending caps in cents. Zero disables
// a window. Limits live client-side only; the backend never sees them.
type Limits struct {
	DailyCents  int64 `json:"daily_cents"`
	WeeklyCents int64 `json:"weekly_cents"`
}

// Level classifies spend relative to a limit.
type Level string

const (
	// LevelOK means spend is under 80% of the limit, or the limit is disabled.
	LevelOK Level = "ok"
	// LevelWarning means spend is at 80% or more but still under the limit.
	LevelWarning Level = "warning"
	// LevelOver means spend has reached or passed the limit.
	LevelOver Level = "over"
)

// WindowStatus is the evaluation result for one window.
type WindowStatus struct {
	SpendCents int64
	LimitCents int64
	Percent    float64
	Level      Level
}

// Report holds both window evaluations for a snapshot.
type Report struct {
	Daily  WindowStatus
	Weekly WindowStatus
}

// Evaluate computes daily and trailing-weekly expense totals against the
// configured limits. It is pure: recomputed from scratch on every snapshot
// and carries no memory of previous evaluations. The reference time is
// injected so tests can pin "today".
func Evaluate(transactions []model.Transaction, limits Limits, now time.Time) Report {
	today := now.Format(model.DateLayout)
	weekStart := now.AddDate(0, 0, -6).Format(model.DateLayout)

	var daily, weekly int64
	for _, t := range transactions {
		if t.Type != model.TypeExpense {
			continue
		}
		cents, ok := t.AmountCents()
		if !ok {
			continue
		}
		if t.Date == today {
			daily += cents
		}
		// 7-day inclusive trailing window: today and the 6 days before it.
		if t.Date >= weekStart && t.Date <= today {
			weekly += cents
		}
	}

	return Report{
		Daily:  evaluateWindow(daily, limits.DailyCents),
		Weekly: evaluateWindow(weekly, limits.WeeklyCents),
	}
}

func evaluateWindow(spend, limit int64) WindowStatus {
	status := WindowStatus{
		SpendCents: spend,
		LimitCents: limit,
		Level:      LevelOK,
	}
	if limit <= 0 {
		// Limit disabled; always ok regardless of spend.
		return status
	}

	status.Percent = float64(spend) / float64(limit) * 100
	switch {
	case status.Percent >= 100:
		status.Level = LevelOver
	case status.Percent >= 80:
		status.Level = LevelWarning
	}
	return status
}
