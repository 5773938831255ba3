package ledger

// ValidationCode classifies why a record was rejected
type ValidationCode string

const (
	CodeInvalidDate        ValidationCode = "INVALID_DATE"
	CodeInvalidKind        ValidationCode = "INVALID_KIND"
	CodeInvalidDuration    ValidationCode = "INVALID_DURATION"
	CodeMissingDuration    ValidationCode = "MISSING_DURATION"
	CodeMissingDescription ValidationCode = "MISSING_DESCRIPTION"
)

// ValidationError rejects a record at the normalization boundary. A record
// either fully validates or is fully rejected; there are no partial results.
type ValidationError struct {
	Code   ValidationCode
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is matches any *ValidationError with the same code, so callers can test
// with errors.Is against the package sentinels below.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel validation errors returned by Normalize
var (
	ErrInvalidDate        = &ValidationError{CodeInvalidDate, "invalid date, YYYY-MM-DD required"}
	ErrInvalidKind        = &ValidationError{CodeInvalidKind, "invalid kind, EARNED or SPENT required"}
	ErrInvalidDuration    = &ValidationError{CodeInvalidDuration, "invalid duration, positive value required"}
	ErrMissingDuration    = &ValidationError{CodeMissingDuration, "minutes or hours required"}
	ErrMissingDescription = &ValidationError{CodeMissingDescription, "description required"}
)
