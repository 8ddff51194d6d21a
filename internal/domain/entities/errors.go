package entities

import "fmt"

// ValidationError means the caller-supplied parameters are out of domain
// (non-positive area, unknown typology, discipline not in catalog).
// Non-retryable: the caller has to fix the input.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// NewValidationError builds a ValidationError with the offending field/value.
func NewValidationError(field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// ConfigurationError means the catalog itself is inconsistent (phase
// percentages not summing to 100, a dependency cycle, a missing regional
// unit-cost entry). Fatal for the operation, never auto-corrected.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// NewConfigurationError builds a ConfigurationError for a catalog field.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}
