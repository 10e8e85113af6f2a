// Package foundation holds small building blocks shared by the configuration layer.
package foundation

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/mdbook-chapter-path/internal/foundation/errors"
)

// Validator represents a validation function.
type Validator[T any] func(T) ValidationResult

// ValidationResult contains the result of a validation operation.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// FieldError represents a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if fe.Field != "" {
		return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fe.Message
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result with errors.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Valid: false, Errors: errs}
}

// NewFieldError creates a field error.
func NewFieldError(field, code, message string) FieldError {
	return FieldError{Field: field, Code: code, Message: message}
}

// Add records a failure on the result.
func (vr *ValidationResult) Add(fe FieldError) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fe)
}

// Combine merges multiple validation results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}
	all := make([]FieldError, 0, len(vr.Errors)+len(other.Errors))
	all = append(all, vr.Errors...)
	all = append(all, other.Errors...)
	return Invalid(all...)
}

// ToError converts an invalid result into a configuration error listing every field
// problem under the "fields" context key. A valid result gives nil.
func (vr ValidationResult) ToError(message string) error {
	if vr.Valid {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		messages = append(messages, fe.Error())
	}
	return errors.ConfigError(message).
		WithContext("fields", strings.Join(messages, "; ")).
		Build()
}

// ValidatorChain allows chaining multiple validators.
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain.
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Validate runs all validators in the chain and keeps every failure.
func (vc *ValidatorChain[T]) Validate(value T) ValidationResult {
	result := Valid()
	for _, validator := range vc.validators {
		result = result.Combine(validator(value))
	}
	return result
}
