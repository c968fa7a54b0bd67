package session

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration       = errors.New("invalid session configuration")
	ErrNotInProgress       = errors.New("session is not in progress")
	ErrNotCompleted        = errors.New("session is not completed")
	ErrNothingToRetry      = errors.New("no incorrect questions to retry")
	ErrAlreadyAnswered     = errors.New("current question already answered")
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

// ConfigurationError describes why Configure rejected its input.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (err *ConfigurationError) Error() string {
	if err.Field == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, err.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrConfiguration, err.Field, err.Reason)
}

func (err *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
