package ledger

import (
	"sort"
	"strings"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
)

// exportHeader holds the fixed localized column labels of the history export
var exportHeader = []string{"Datum", "Beschreibung", "Typ", "Stunden", "Laufender Saldo"}

var kindLabels = map[transaction.Kind]string{
	transaction.KindEarned: "Hinzugefügt",
	transaction.KindSpent:  "Abgezogen",
}

// ExportRange restricts the export to an inclusive calendar-date window.
// Empty bounds leave the corresponding side open.
type ExportRange struct {
	Start string
	End   string
}

// RenderExport renders the transaction history as CSV text: one row per
// transaction in chronological order with the date formatted dd.mm.yyyy, the
// description quoted (internal quotes doubled), the localized kind label, the
// signed H:MM duration and the running balance at that point. The running
// balance is computed over the full snapshot before the range filter is
// applied, so a windowed export still shows each row's true cumulative
// position.
func RenderExport(txs []*transaction.Transaction, window ExportRange) string {
	entries := WithRunningBalance(txs)
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Date < entries[b].Date
	})

	var b strings.Builder
	b.WriteString(strings.Join(exportHeader, ","))
	for _, e := range entries {
		if window.Start != "" && e.Date < window.Start {
			continue
		}
		if window.End != "" && e.Date > window.End {
			continue
		}
		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			formatDateDE(e.Date),
			`"` + strings.ReplaceAll(e.Description, `"`, `""`) + `"`,
			kindLabels[e.Kind],
			FormatHMM(e.SignedMinutes()),
			FormatHMM(e.RunningMinutes),
		}, ","))
	}
	b.WriteString("\n")
	return b.String()
}
