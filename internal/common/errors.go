// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Ledger errors.
	ErrNotFound        = errors.New("transaction not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrEmptyCategory   = errors.New("category is required")
	ErrInvalidDate     = errors.New("invalid date")
	ErrDuplicateSalary = errors.New("salary already recorded for this month")
	ErrNoIncome        = errors.New("no income recorded for this month")

	// Credential errors.
	ErrUserExists      = errors.New("username already taken")
	ErrUnknownUser     = errors.New("unknown user")
	ErrBadCredentials  = errors.New("invalid username or password")
	ErrInvalidUsername = errors.New("invalid username")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// Message returns the text to show the user for err. A wrapped UserError wins;
// the plain ledger sentinels are already phrased for display.
func Message(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
