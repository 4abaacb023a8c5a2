// Package parsing turns raw icon configuration documents into validated,
// fully-defaulted IconConfig values.
package parsing

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a single field violation. The set is closed: boundary
// layers switch on it to build structured error responses.
type ErrorKind string

// Field violation kinds.
const (
	KindInvalidType      ErrorKind = "InvalidType"
	KindInvalidEnum      ErrorKind = "InvalidEnum"
	KindInvalidDimension ErrorKind = "InvalidDimension"
	KindEmptyField       ErrorKind = "EmptyField"
)

// FieldError is one violation at a specific field path.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

// ValidationError aggregates every violation found in one pass over a raw
// configuration. It is never truncated to the first failure.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid icon configuration:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Details renders the violations as "<field path>: <message>" strings in
// discovery order, the shape boundary error responses carry.
func (ve *ValidationError) Details() []string {
	details := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		details = append(details, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return details
}
