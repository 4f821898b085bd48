package service

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError rejects a write before anything reaches the store.
// Fields maps the JSON field name to a short reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// fieldErrors accumulates reasons; nil when nothing was added.
type fieldErrors map[string]string

func (f fieldErrors) add(field, reason string) { f[field] = reason }

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// ConflictError is a constraint violation with a client-safe message.
// It unwraps to repository.ErrConstraint.
type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string { return e.Message + ": " + e.Err.Error() }

func (e *ConflictError) Unwrap() error { return e.Err }

func conflict(err error, format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...), Err: err}
}
