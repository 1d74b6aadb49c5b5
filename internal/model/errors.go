package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a product, category or supplier id is unknown.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned by a sale whose amount exceeds the
	// available quantity. It is expected and recoverable: the caller surfaces
	// it as a field-level error on the amount, never as a system failure.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError carries field-level messages back to the caller. No
// mutation has been performed when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
