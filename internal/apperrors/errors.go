package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInvalidAmount indicates a zero, negative or non-numeric requested amount.
// Rejected before any wallet lock is taken.
var ErrInvalidAmount = errors.New("amount must be a positive decimal")

// ErrInsufficientFunds indicates that a debit would push a wallet balance
// below zero. Recoverable by the caller; never retried automatically.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrConcurrencyConflict indicates a wallet version mismatch despite lock
// discipline. Safe to retry the whole operation once.
var ErrConcurrencyConflict = errors.New("wallet version conflict")

// ErrIdempotencyConflict indicates an idempotency key reused against a
// different endpoint than the one it was first issued for.
var ErrIdempotencyConflict = errors.New("idempotency key already used for a different endpoint")

// AppError wraps an underlying error with an HTTP-ish status code and a
// human-readable message. Storage-layer faults are reported through it.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
