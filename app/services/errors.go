package services

import "strconv"

// ConfigurationError is returned when a configuration-driven selection
// encounters a value it does not recognize. There is no silent default:
// the error propagates to whoever triggered the selection.
type ConfigurationError struct {
	// Value is the unrecognized configuration value or key.
	Value string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	// Example: config: unrecognized value "syslog"
	return "config: unrecognized value " + strconv.Quote(e.Value)
}
