package domain

import "chargemap/pkg/serrors"

// Entity names used in validation errors.
const (
	EntityPostalCode      = "postal_code"
	EntityChargingStation = "charging_station"
	EntityUser            = "user"
)

// ValidationError reports the first invariant an entity constructor found
// violated. It matches serrors.ErrValidation with errors.Is.
type ValidationError struct {
	// Entity is the kind of entity being constructed.
	Entity string
	// Field is the offending field name as it appears in records.
	Field string
	// Rule is a short machine-readable name of the violated rule.
	Rule string
	// Message is the human-readable reason.
	Message string
}

func newValidationError(entity, field, rule, msg string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Rule: rule, Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap exposes the validation kind so callers can classify the error.
func (e *ValidationError) Unwrap() error { return serrors.ErrValidation }
