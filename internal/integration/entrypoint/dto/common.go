// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// ParseDate parses an optional date-only field. An empty or missing value
// yields nil.
func ParseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders an optional date-only field.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatDateValue(t time.Time) string {
	return t.Format(dateLayout)
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
