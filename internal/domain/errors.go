package domain

import (
	"errors"
	"fmt"
)

// Closed set of error kinds shared by the services and the API layer.
// Handlers branch on these with errors.Is instead of matching message text.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrFlightNotFound    = errors.New("flight not found")
	ErrEmailTaken        = errors.New("email already exists")
	ErrInvalidCredential = errors.New("incorrect password")
	ErrAuthRequired      = errors.New("login required")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrTicketRender      = errors.New("ticket generation failed")
)

// ValidationError reports malformed or missing request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is any of the missing-entity kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrFlightNotFound)
}
