// Package common defines shared constants and the error taxonomy used across
// client and server layers of Garden. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorValidation is matched by every *ValidationError.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// Validation rules reported in ValidationError.Rule.
const (
	RuleRequired = "required"
	RuleTooShort = "too_short"
	RuleTooLong  = "too_long"
	RuleRange    = "out_of_range"
	RuleFormat   = "invalid_format"
)

// ValidationError reports a single violated input constraint.
type ValidationError struct {
	// Field is the json path of the offending input, e.g. "text" or "where.author.name".
	Field string
	// Rule is one of the Rule* constants.
	Rule string
	// Message is human readable and safe to show to the user.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrorValidation) true for any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrorValidation
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Message: message}
}
