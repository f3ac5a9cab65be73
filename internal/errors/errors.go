// Package apperrors defines the exit codes and error types of the
// bigcalc command. The library itself reports failures through the
// sentinel errors of the root package; this package only maps them onto
// process outcomes.
package apperrors

import "fmt"

// Exit codes signal the outcome of a bigcalc run to the OS.
const (
	ExitSuccess      = 0 // successful execution
	ExitErrorGeneric = 1 // arithmetic failure (division by zero, negative root)
	ExitErrorConfig  = 2 // invalid flags or operands
)

// ConfigError represents a user configuration error, such as an unknown
// operation or an unparseable operand.
type ConfigError struct {
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using %w, so the
// cause stays visible to errors.Is and errors.As. A nil err yields nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
