package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector with invalid dimensions or values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidConfig indicates a construction-time precondition was violated.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrContextCanceled indicates the simulation was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")
)

// ConfigError reports which configuration field failed validation.
type ConfigError struct {
	Field   string
	Value   any
	Reason  string
	Wrapped error
}

// NewConfigError returns a ConfigError wrapping ErrInvalidConfig.
func NewConfigError(field string, value any, reason string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: reason, Wrapped: ErrInvalidConfig}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", e.Wrapped.Error(), e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
