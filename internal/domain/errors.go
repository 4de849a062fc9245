package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNetworkNotFound is returned when a network name is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrInvalidConfig is returned when the project configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidPrivateKey is returned when a configured signing key cannot be parsed
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// UnknownNetworkError reports a missing network along with close matches
type UnknownNetworkError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownNetworkError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' is not configured", e.Name)
	}
	return fmt.Sprintf("network '%s' is not configured, did you mean: %s?",
		e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownNetworkError) Is(target error) bool {
	return target == ErrNetworkNotFound
}

// ConfigFieldError ties a validation failure to a configuration field
type ConfigFieldError struct {
	Field  string
	Reason string
}

func (e *ConfigFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigFieldError) Unwrap() error {
	return ErrInvalidConfig
}
