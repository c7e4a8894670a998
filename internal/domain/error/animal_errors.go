// Package error defines domain-specific errors for the livestock records API.
package error

import "errors"

// Animal domain errors.
var (
	// ErrAnimalNotFound is returned when an animal is not found in the system.
	ErrAnimalNotFound = errors.New("animal not found")

	// ErrDuplicateTagID is returned when the requested tag id is already assigned.
	ErrDuplicateTagID = errors.New("tag id already in use")

	// ErrInvalidSex is returned when the sex value is not Doe or Buck.
	ErrInvalidSex = errors.New("invalid sex")

	// ErrInvalidAnimalStatus is returned when the status is not a known lifecycle state.
	ErrInvalidAnimalStatus = errors.New("invalid animal status")

	// ErrParentNotFound is returned when a referenced mother or father does not exist.
	ErrParentNotFound = errors.New("parent animal not found")

	// ErrParentageCycle is returned when a parent assignment would make the
	// animal its own ancestor.
	ErrParentageCycle = errors.New("parent assignment would create a cycle")
)

// AnimalErrorCode defines error codes for animal errors.
// Format: ANM-XXYYYY where XX is category and YYYY is specific error.
type AnimalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSex          AnimalErrorCode = "ANM-010001"
	ErrCodeInvalidAnimalStatus AnimalErrorCode = "ANM-010002"
	ErrCodeMissingAnimalFields AnimalErrorCode = "ANM-010003"
	ErrCodeParentageCycle      AnimalErrorCode = "ANM-010004"

	// Lookup errors (02XXXX)
	ErrCodeAnimalNotFound AnimalErrorCode = "ANM-020001"
	ErrCodeParentNotFound AnimalErrorCode = "ANM-020002"

	// Conflict errors (03XXXX)
	ErrCodeDuplicateTagID AnimalErrorCode = "ANM-030001"
)

// AnimalError represents an animal error with code and message.
type AnimalError struct {
	Code    AnimalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnimalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnimalError) Unwrap() error {
	return e.Err
}

// NewAnimalError creates a new AnimalError with the given code and message.
func NewAnimalError(code AnimalErrorCode, message string, err error) *AnimalError {
	return &AnimalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
