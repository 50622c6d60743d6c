package domain

import "fmt"

// ConfigError reports malformed or contradictory scheduling configuration
// (working hours, horizon, granularity). It is fatal: no partial schedule is
// produced when one is returned.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "config: " + e.Message
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}
