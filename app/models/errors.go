package models

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by login when no fixed user matches.
var ErrInvalidCredentials = errors.New("credenciales inválidas")

// ValidationError reports malformed or missing input. No mutation happens
// when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// InsufficientStockError is returned when a sale or production run would
// exceed available stock. Available carries the limiting quantity so the
// caller can report it: product stock for a sale, the maximum producible
// quantity for a production run.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %g",
		e.ProductID, e.Requested, e.Available)
}

// NoRecipeError is returned when production is attempted on a product that
// has no recipe.
type NoRecipeError struct {
	ProductID string
}

func (e *NoRecipeError) Error() string {
	return fmt.Sprintf("product %s has no recipe", e.ProductID)
}

// PersistenceError wraps a storage read/write failure. These are logged and
// swallowed; the in-memory store stays authoritative for the session.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
