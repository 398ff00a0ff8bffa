// Package model defines the core domain types shared across the client.
package model

import (
	"fmt"
	"time"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome marks transactions that add to the balance.
	TypeIncome TransactionType = "income"
	// TypeExpense marks transactions that subtract from the balance.
	TypeExpense TransactionType = "expense"
)

// DateLayout is the wire format for transaction dates. The backend sends
// bare ISO dates, so lexical ordering of the Date field is date ordering.
const DateLayout = "2006-01-02"

// Transaction is a single dated income or expense record. The backend owns
// it; the client only ever holds immutable snapshots and re-fetches after
// every mutation.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      string          `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Draft is the client-authored subset of a transaction, sent on create and
// update. The server assigns ID and timestamps.
type Draft struct {
	Type        TransactionType `json:"type"`
	Amount      string          `json:"amount"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// Validate checks a draft before it is sent to the backend. The backend
// validates too; this catches obvious mistakes without a round trip.
func (d Draft) Validate() error {
	if d.Type != TypeIncome && d.Type != TypeExpense {
		return fmt.Errorf("type must be %q or %q, got %q", TypeIncome, TypeExpense, d.Type)
	}
	cents, err := ParseCents(d.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", d.Amount, err)
	}
	if cents <= 0 {
		return fmt.Errorf("amount must be greater than zero, got %q", d.Amount)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("unknown category %q", d.Category)
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD, got %q", d.Date)
	}
	return nil
}

// AmountCents returns the transaction amount in cents. Malformed amounts
// report ok=false so aggregation can treat the record as contributing zero
// instead of aborting the whole computation.
func (t Transaction) AmountCents() (cents int64, ok bool) {
	c, err := ParseCents(t.Amount)
	if err != nil {
		return 0, false
	}
	return c, true
}
