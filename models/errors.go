package models

import "errors"

// Sentinel errors for the domain. Callers branch on these with errors.Is;
// the human-readable detail travels alongside via fmt.Errorf("%w: ...").
var (
	// ErrValidation marks malformed input to a constructor or mutator.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference that does not resolve through a repository.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState marks an operation attempted from a state that does not
	// permit it.
	ErrInvalidState = errors.New("invalid state")

	// ErrEmptyOrder marks a confirmation attempt on an order with no items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrTableUnavailable marks an occupy or reserve on a table that is not
	// AVAILABLE.
	ErrTableUnavailable = errors.New("table unavailable")

	// ErrDuplicatePayment marks a second payment created for the same order.
	ErrDuplicatePayment = errors.New("duplicate payment")

	// ErrConflict marks an operation that clashes with existing state, such as
	// deleting an occupied table or reusing a table number.
	ErrConflict = errors.New("conflict")
)
