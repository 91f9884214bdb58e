package errors

import "errors"

// ConfigError reports a structurally invalid question configuration.
// Error returns Reason unchanged so callers can show it to authors as is.
type ConfigError struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

func (ce *ConfigError) Error() string {
	return ce.Reason
}

// NewConfigError creates a new configuration error
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{
		Field:  field,
		Reason: reason,
	}
}

// AsConfigError unwraps err into a *ConfigError when it carries one
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ConfigErrorFromValidation converts the first struct validation failure
// into a ConfigError. Validation is fail-fast, so later failures are dropped.
func ConfigErrorFromValidation(err error) *ConfigError {
	if err == nil {
		return nil
	}
	if ve := ToValidationErrors(err); len(ve) > 0 {
		return NewConfigError(ve[0].Field, ve[0].Field+" "+ve[0].Message)
	}
	return NewConfigError("", err.Error())
}
