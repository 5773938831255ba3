// Package ledger holds the overtime ledger core: unit normalization, balance
// and running-balance computation, and CSV import/export. Every function is a
// pure function over the arguments it is given; the package performs no I/O
// and retains no state between calls.
package ledger

import (
	"math"
	"regexp"
	"strings"

	"github.com/ueberstunden/overtime-ledger/internal/domain/transaction"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Input is a transaction candidate before normalization. Duration may arrive
// as integer minutes, as decimal hours, or both; Minutes always wins when
// both are set.
type Input struct {
	Date        string
	Kind        string
	Minutes     *int
	Hours       *float64
	Description string
}

// Record is a fully validated transaction candidate with the duration
// resolved to canonical integer minutes.
type Record struct {
	Date        string
	Kind        transaction.Kind
	Minutes     int
	Description string
}

// MinutesFromHours converts decimal hours to canonical minutes, rounding
// half away from zero. The same conversion is applied on input normalization
// and on the legacy-document read path so both can never disagree.
func MinutesFromHours(hours float64) int {
	return int(math.Round(hours * 60))
}

// HoursFromMinutes derives the decimal-hours view of a minutes value. Display
// only; minutes remain the source of truth.
func HoursFromMinutes(minutes int) float64 {
	return float64(minutes) / 60
}

// Normalize validates an input record and resolves its duration to integer
// minutes. It is the single validation pipeline shared by record creation,
// record update and every CSV import row.
func Normalize(in Input) (Record, error) {
	date := in.Date
	if len(date) > 10 {
		date = date[:10] // drop any time-of-day precision
	}
	if !datePattern.MatchString(date) {
		return Record{}, ErrInvalidDate
	}

	kind := transaction.Kind(strings.ToUpper(strings.TrimSpace(in.Kind)))
	if !kind.Valid() {
		return Record{}, ErrInvalidKind
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return Record{}, ErrMissingDescription
	}

	var minutes int
	switch {
	case in.Minutes != nil:
		if *in.Minutes <= 0 {
			return Record{}, ErrInvalidDuration
		}
		minutes = *in.Minutes
	case in.Hours != nil:
		h := *in.Hours
		if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
			return Record{}, ErrInvalidDuration
		}
		minutes = MinutesFromHours(h)
		if minutes <= 0 {
			return Record{}, ErrInvalidDuration
		}
	default:
		return Record{}, ErrMissingDuration
	}

	return Record{
		Date:        date,
		Kind:        kind,
		Minutes:     minutes,
		Description: description,
	}, nil
}
