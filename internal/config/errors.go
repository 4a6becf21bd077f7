package config

import "fmt"

// ConfigError reports a missing or malformed configuration value. It is
// fatal: the run aborts before any layout starts and no output file is
// created.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
