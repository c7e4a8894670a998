package error

import "errors"

// Expense domain errors.
var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrInvalidExpenseAmount = errors.New("expense amount must be greater than zero")
)

// Breeding domain errors.
var (
	ErrBreedingAnimalNotFound = errors.New("one or both animals not found")
	ErrNotADoe                = errors.New("animal is not a doe")
	ErrNotABuck               = errors.New("animal is not a buck")
	ErrInvalidMatingDate      = errors.New("invalid mating date")
)

// RecordErrorCode defines error codes for expense and breeding errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount RecordErrorCode = "REC-010001"
	ErrCodeNotADoe              RecordErrorCode = "REC-010002"
	ErrCodeNotABuck             RecordErrorCode = "REC-010003"
	ErrCodeInvalidMatingDate    RecordErrorCode = "REC-010004"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound        RecordErrorCode = "REC-020001"
	ErrCodeBreedingAnimalNotFound RecordErrorCode = "REC-020002"
)

// RecordError represents an expense or breeding error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
