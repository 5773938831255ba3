package ledger

import (
	"sort"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
)

// TotalBalance sums the signed minute contributions of all transactions.
// The result is independent of the order of the snapshot.
func TotalBalance(txs []*transaction.Transaction) int {
	total := 0
	for _, t := range txs {
		total += t.SignedMinutes()
	}
	return total
}

// RunningEntry pairs a transaction with the cumulative balance at its
// chronological position.
type RunningEntry struct {
	*transaction.Transaction
	RunningMinutes int
}

// WithRunningBalance attaches a running balance to every transaction in the
// snapshot. The accumulation order is strictly chronological by date, ties
// broken by the snapshot's own order (insertion order as persisted); the
// returned slice keeps the input order, so callers may re-sort for display
// without ever changing a row's running value.
func WithRunningBalance(txs []*transaction.Transaction) []RunningEntry {
	entries := make([]RunningEntry, len(txs))
	for i, t := range txs {
		entries[i] = RunningEntry{Transaction: t}
	}

	order := make([]int, len(txs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return txs[order[a]].Date < txs[order[b]].Date
	})

	running := 0
	for _, idx := range order {
		running += txs[idx].SignedMinutes()
		entries[idx].RunningMinutes = running
	}

	return entries
}
