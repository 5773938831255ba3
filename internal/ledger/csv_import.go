package ledger

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyImport rejects a CSV body with no data rows (header only, or
// nothing at all). This is a top-level failure, never a per-row error.
var ErrEmptyImport = errors.New("csv contains no data rows")

// Recognized header synonyms per field; the first matching header wins and
// lookup is case-insensitive.
var (
	dateHeaders        = []string{"date", "datum"}
	kindHeaders        = []string{"type", "typ", "kind"}
	minutesHeaders     = []string{"minutes", "minuten"}
	hoursHeaders       = []string{"hours", "stunden"}
	descriptionHeaders = []string{"description", "beschreibung"}
)

// ImportRow is a successfully validated CSV row. Row is 1-based within the
// data section (the first row after the header is row 1).
type ImportRow struct {
	Row    int
	Record Record
}

// RowError is a non-fatal, per-row failure. It never aborts sibling rows.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult carries parsed rows and collected row errors, both in
// original row order.
type ImportResult struct {
	Rows   []ImportRow
	Errors []RowError
}

// ParseImport parses a CSV payload into transaction candidates, validating
// each row independently through Normalize. A malformed row is recorded as a
// RowError and excluded; it never blocks the remaining rows.
func ParseImport(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, ErrEmptyImport
	}

	header := lines[0]
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	dateIdx := findHeader(header, dateHeaders)
	kindIdx := findHeader(header, kindHeaders)
	minutesIdx := findHeader(header, minutesHeaders)
	hoursIdx := findHeader(header, hoursHeaders)
	descriptionIdx := findHeader(header, descriptionHeaders)

	result := &ImportResult{}
	for i, line := range lines[1:] {
		row := i + 1

		in := Input{
			Date:        field(line, dateIdx),
			Kind:        field(line, kindIdx),
			Description: field(line, descriptionIdx),
		}

		// A populated minutes cell is authoritative; hours is only consulted
		// when minutes is absent, so the two can never double-convert.
		if cell := field(line, minutesIdx); cell != "" {
			m, err := strconv.Atoi(cell)
			if err != nil {
				result.Errors = append(result.Errors, RowError{Row: row, Reason: ErrInvalidDuration.Reason})
				continue
			}
			in.Minutes = &m
		} else if cell := field(line, hoursIdx); cell != "" {
			h, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				result.Errors = append(result.Errors, RowError{Row: row, Reason: ErrInvalidDuration.Reason})
				continue
			}
			in.Hours = &h
		}

		record, err := Normalize(in)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Reason: err.Error()})
			continue
		}

		result.Rows = append(result.Rows, ImportRow{Row: row, Record: record})
	}

	return result, nil
}

func findHeader(header []string, synonyms []string) int {
	for i, h := range header {
		for _, s := range synonyms {
			if h == s {
				return i
			}
		}
	}
	return -1
}

func field(line []string, idx int) string {
	if idx < 0 || idx >= len(line) {
		return ""
	}
	return strings.TrimSpace(line[idx])
}
