package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
)

func TestRenderExport(t *testing.T) {
	t.Run("ChronologicalWithRunningBalance", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx("b", "2024-01-02", transaction.KindSpent, 120),
			tx("a", "2024-01-01", transaction.KindEarned, 480),
		}
		out := RenderExport(txs, ExportRange{})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Datum,Beschreibung,Typ,Stunden,Laufender Saldo", lines[0])
		assert.Equal(t, `01.01.2024,"entry a",Hinzugefügt,8:00,8:00`, lines[1])
		assert.Equal(t, `02.01.2024,"entry b",Abgezogen,-2:00,6:00`, lines[2])
	})

	t.Run("InternalQuotesDoubled", func(t *testing.T) {
		entry := tx("a", "2024-03-01", transaction.KindEarned, 60)
		entry.Description = `release "hotfix" night`
		out := RenderExport([]*transaction.Transaction{entry}, ExportRange{})

		assert.Contains(t, out, `"release ""hotfix"" night"`)
	})

	t.Run("RangeFilterIsInclusive", func(t *testing.T) {
		txs := []*transaction.Transaction{
			tx("a", "2024-01-01", transaction.KindEarned, 60),
			tx("b", "2024-01-15", transaction.KindEarned, 30),
			tx("c", "2024-02-01", transaction.KindSpent, 45),
		}
		out := RenderExport(txs, ExportRange{Start: "2024-01-15", End: "2024-02-01"})

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 3)
		assert.NotContains(t, out, "entry a")
		// Running balance stays global: the first exported row already
		// carries the hour earned before the window.
		assert.Equal(t, `15.01.2024,"entry b",Hinzugefügt,0:30,1:30`, lines[1])
		assert.Equal(t, `01.02.2024,"entry c",Abgezogen,-0:45,0:45`, lines[2])
	})

	t.Run("EmptySetRendersHeaderOnly", func(t *testing.T) {
		out := RenderExport(nil, ExportRange{})
		assert.Equal(t, "Datum,Beschreibung,Typ,Stunden,Laufender Saldo\n", out)
	})
}
