package apperr

import "fmt"

// DefinitionError reports a broken declaration detected at startup: a
// duplicate subcommand, an invalid descriptor, or a field-set that does not
// match the configuration object it feeds.
type DefinitionError struct {
	Message string
	Err     error
}

func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return "definition error: " + e.Message + ": " + e.Err.Error()
	}
	return "definition error: " + e.Message
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

func NewDefinition(format string, args ...any) *DefinitionError {
	return &DefinitionError{Message: fmt.Sprintf(format, args...)}
}

func NewDefinitionWrap(msg string, err error) *DefinitionError {
	return &DefinitionError{Message: msg, Err: err}
}

// InvalidOptionError reports a command-line value that violates the type,
// required-ness or choice constraints of its option. Message must never
// contain the offending value of a secret-bearing option.
type InvalidOptionError struct {
	Option  string
	Message string
	Err     error
}

func (e *InvalidOptionError) Error() string {
	msg := e.Message
	if e.Option != "" {
		msg = fmt.Sprintf("invalid value for --%s: %s", e.Option, e.Message)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidOptionError) Unwrap() error {
	return e.Err
}

func NewInvalidOption(option, msg string) *InvalidOptionError {
	return &InvalidOptionError{Option: option, Message: msg}
}

func NewInvalidOptionWrap(option, msg string, err error) *InvalidOptionError {
	return &InvalidOptionError{Option: option, Message: msg, Err: err}
}

// ConfigBuildError reports a parameter combination rejected by a connection
// or index configuration object.
type ConfigBuildError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigBuildError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigBuildError) Unwrap() error {
	return e.Err
}

func NewConfigBuild(field, msg string) *ConfigBuildError {
	return &ConfigBuildError{Field: field, Message: msg}
}
