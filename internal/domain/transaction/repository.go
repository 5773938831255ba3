package transaction

import (
	"context"
)

// Repository manages transaction persistence. Implementations assign the ID
// on Create and guarantee List returns entries sorted by (date, created_at)
// ascending, so snapshot order is the chronological insertion order.
//
// Repositories enforce none of the business invariants; records must be
// normalized and validated before they reach Create or Update.
type Repository interface {
	Create(ctx context.Context, tx *Transaction) (*Transaction, error)
	List(ctx context.Context) ([]*Transaction, error)
	Get(ctx context.Context, id string) (*Transaction, error)
	Update(ctx context.Context, id string, tx *Transaction) (*Transaction, error)
	Delete(ctx context.Context, id string) error
}

// ErrTransactionNotFound indicates a missing transaction
type ErrTransactionNotFound struct {
	ID string
}

func (e ErrTransactionNotFound) Error() string {
	return "transaction not found: " + e.ID
}

// Is implements the errors.Is interface for ErrTransactionNotFound
func (e ErrTransactionNotFound) Is(target error) bool {
	t, ok := target.(ErrTransactionNotFound)
	if !ok {
		return false
	}
	// An empty target ID matches any ErrTransactionNotFound
	if t.ID == "" {
		return true
	}
	return e.ID == t.ID
}
