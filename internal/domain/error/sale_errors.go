// Package error defines domain-specific errors for the livestock records API.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrAnimalAlreadySold is returned when a sale is attempted for an animal
	// whose status is already Sold.
	ErrAnimalAlreadySold = errors.New("animal is already sold")

	// ErrInvalidSalePrice is returned when the sale price is not positive.
	ErrInvalidSalePrice = errors.New("sale price must be greater than zero")

	// ErrInvalidSaleStatus is returned when the sale status is not a known value.
	ErrInvalidSaleStatus = errors.New("invalid sale status")

	// ErrInvalidSaleDate is returned when the sale date is malformed.
	ErrInvalidSaleDate = errors.New("invalid sale date")

	// ErrInvalidSaleGrouping is returned when the stats grouping is unknown.
	ErrInvalidSaleGrouping = errors.New("invalid sale grouping")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSalePrice    SaleErrorCode = "SAL-010001"
	ErrCodeInvalidSaleStatus   SaleErrorCode = "SAL-010002"
	ErrCodeInvalidSaleDate     SaleErrorCode = "SAL-010003"
	ErrCodeMissingSaleFields   SaleErrorCode = "SAL-010004"
	ErrCodeInvalidSaleGrouping SaleErrorCode = "SAL-010005"

	// Lookup errors (02XXXX)
	ErrCodeSaleNotFound SaleErrorCode = "SAL-020001"

	// Conflict errors (03XXXX)
	ErrCodeAnimalAlreadySold SaleErrorCode = "SAL-030001"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
