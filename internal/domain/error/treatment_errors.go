// Package error defines domain-specific errors for the livestock records API.
package error

import "errors"

// Treatment domain errors.
var (
	// ErrTreatmentNotFound is returned when a treatment is not found in the system.
	ErrTreatmentNotFound = errors.New("treatment not found")

	// ErrInvalidTreatmentType is returned when the type is not in the allow-list.
	ErrInvalidTreatmentType = errors.New("invalid treatment type")

	// ErrMissingCustomType is returned when type "Other" lacks a custom description.
	ErrMissingCustomType = errors.New("custom treatment type is required when 'Other' is selected")

	// ErrInvalidTreatmentCost is returned when the cost is negative.
	ErrInvalidTreatmentCost = errors.New("treatment cost must not be negative")
)

// TreatmentErrorCode defines error codes for treatment errors.
// Format: TRT-XXYYYY where XX is category and YYYY is specific error.
type TreatmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTreatmentType   TreatmentErrorCode = "TRT-010001"
	ErrCodeMissingCustomType      TreatmentErrorCode = "TRT-010002"
	ErrCodeInvalidTreatmentCost   TreatmentErrorCode = "TRT-010003"
	ErrCodeMissingTreatmentFields TreatmentErrorCode = "TRT-010004"

	// Lookup errors (02XXXX)
	ErrCodeTreatmentNotFound TreatmentErrorCode = "TRT-020001"
)

// TreatmentError represents a treatment error with code and message.
type TreatmentError struct {
	Code    TreatmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TreatmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TreatmentError) Unwrap() error {
	return e.Err
}

// NewTreatmentError creates a new TreatmentError with the given code and message.
func NewTreatmentError(code TreatmentErrorCode, message string, err error) *TreatmentError {
	return &TreatmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
