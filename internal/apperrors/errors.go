// Package apperrors defines the error values shared by services and
// repositories. Handlers translate them into HTTP responses: ErrNotFound
// becomes 404, ErrConflict 409 (duplicate link, blocked user deletion) and
// ValidationError 422. Anything else is treated as an internal failure,
// logged with its context and masked before reaching the client.
package apperrors

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("registro não encontrado")

// ErrConflict is returned when an operation cannot proceed because of
// existing state, such as a duplicate user-product link or deleting a
// user that still has linked products.
var ErrConflict = errors.New("conflito de estado")

// ValidationError carries a field to messages map describing every
// rule the input violated.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	return "erro de validação"
}

// NewValidationError builds a ValidationError with a single field failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: map[string][]string{field: {message}}}
}

// Add appends a message to a field, creating the map entry when needed.
func (e *ValidationError) Add(field, message string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[field] = append(e.Errors[field], message)
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}
