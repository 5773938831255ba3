package ledger

import (
	"fmt"
	"time"
)

// FormatHMM renders a minutes value as sign + hours + ":" + two-digit
// minutes, e.g. 90 -> "1:30", -185 -> "-3:05".
func FormatHMM(totalMinutes int) string {
	sign := ""
	abs := totalMinutes
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("%s%d:%02d", sign, abs/60, abs%60)
}

// formatDateDE renders an ISO date as dd.mm.yyyy. Unparseable input is
// returned as-is so a malformed stored date never breaks an export.
func formatDateDE(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("02.01.2006")
}
