package transaction

import (
	"time"
)

// Kind defines the direction of a transaction's contribution to the balance
type Kind string

const (
	KindEarned Kind = "EARNED" // extra hours worked, added to the balance
	KindSpent  Kind = "SPENT"  // time taken off, deducted from the balance
)

// Valid reports whether k is one of the recognized kinds
func (k Kind) Valid() bool {
	return k == KindEarned || k == KindSpent
}

// Transaction represents a single overtime ledger entry. Duration is always
// held as integer minutes; decimal hours only exist at the input and display
// boundaries.
type Transaction struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // calendar date, YYYY-MM-DD
	Kind        Kind      `json:"kind"`
	Minutes     int       `json:"minutes"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignedMinutes returns the transaction's contribution to any balance:
// positive for EARNED, negative for SPENT.
func (t *Transaction) SignedMinutes() int {
	if t.Kind == KindSpent {
		return -t.Minutes
	}
	return t.Minutes
}
