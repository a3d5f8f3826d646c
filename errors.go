package cardorm

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrNotFound is returned when a requested key set or key is not registered.
	ErrNotFound = errors.New("cardorm: not found")

	// ErrDuplicateField is returned when the same field is assigned twice
	// in a SET clause.
	ErrDuplicateField = errors.New("cardorm: duplicate field")

	// ErrNoTable is returned when a FROM or UPDATE clause is rendered
	// before any table was added.
	ErrNoTable = errors.New("cardorm: no table")

	// ErrUnsupportedValue is returned when a Go value has no field value representation.
	ErrUnsupportedValue = errors.New("cardorm: unsupported value")
)

// NotFoundError represents an error when a key set or key is not registered.
type NotFoundError struct {
	kind string
	name string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cardorm: %s %q not found", e.kind, e.name)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Kind returns what was looked up ("section", "key").
func (e *NotFoundError) Kind() string {
	return e.kind
}

// Name returns the name that was looked up.
func (e *NotFoundError) Name() string {
	return e.name
}

// NewNotFoundError returns a new NotFoundError.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{kind: kind, name: name}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// DuplicateFieldError represents a field assigned twice in the same clause.
type DuplicateFieldError struct {
	Field string
}

// Error returns the error string.
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("cardorm: field %q already assigned", e.Field)
}

// Is reports whether the target error matches DuplicateFieldError.
func (e *DuplicateFieldError) Is(err error) bool {
	return err == ErrDuplicateField
}

// NewDuplicateFieldError returns a new DuplicateFieldError for the given field.
func NewDuplicateFieldError(field string) *DuplicateFieldError {
	return &DuplicateFieldError{Field: field}
}

// IsDuplicateField returns true if the error is a DuplicateFieldError.
func IsDuplicateField(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateFieldError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateField)
}

// ValidationError represents a malformed schema descriptor.
type ValidationError struct {
	Name string // Key set or key name
	Err  error  // Underlying validation error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("cardorm: invalid descriptor %q: %s", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a new ValidationError.
func NewValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

// QueryError wraps a storage error with the table and operation that caused it.
type QueryError struct {
	Table string // Table being queried
	Op    string // Operation (e.g., "scalar", "count")
	Err   error  // Underlying error
}

// Error returns the error string.
func (e *QueryError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("cardorm: querying %s (%s): %v", e.Table, e.Op, e.Err)
	}
	return fmt.Sprintf("cardorm: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError returns a new QueryError.
func NewQueryError(table, op string, err error) *QueryError {
	return &QueryError{Table: table, Op: op, Err: err}
}

// IsQueryError returns true if the error is a QueryError.
func IsQueryError(err error) bool {
	if err == nil {
		return false
	}
	var e *QueryError
	return errors.As(err, &e)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "cardorm: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "cardorm: multiple errors:"
	for i, err := range e.Errors {
		msg += fmt.Sprintf("\n  [%d] %v", i+1, err)
	}
	return msg
}

// Unwrap returns the collected errors.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
