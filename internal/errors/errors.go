// Package errors provides standardized error handling for skim.
// It defines kinded error types for file operations and configuration so
// callers and tests can assert on failure classes instead of inferring them
// from the absence of a state change.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Operation error kinds
	NotFound
	AccessDenied
	NameConflict
	InvalidName
	IOFailure
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// ApplicationError is the base error type for all skim errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// OpError represents a failed file operation on a specific path
type OpError struct {
	ApplicationError
	path string
}

// NewOpError creates a new file operation error
func NewOpError(msg string, path string, kind ErrorKind, err error) *OpError {
	return &OpError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the operation error message
func (e *OpError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *OpError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// ClassifyOp wraps a raw filesystem error as an OpError, mapping os-level
// sentinel errors onto the operation taxonomy.
func ClassifyOp(msg, path string, err error) error {
	if err == nil {
		return nil
	}
	kind := IOFailure
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = NotFound
	case errors.Is(err, fs.ErrPermission):
		kind = AccessDenied
	case errors.Is(err, fs.ErrExist), errors.Is(err, os.ErrExist):
		kind = NameConflict
	}
	return NewOpError(msg, path, kind, err)
}

// kindOf extracts the ErrorKind from any error in the chain
func kindOf(err error) ErrorKind {
	var appErr interface{ Kind() ErrorKind }
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsNotFound checks if the error is a not-found error
func IsNotFound(err error) bool {
	return kindOf(err) == NotFound
}

// IsAccessDenied checks if the error is an access denied error
func IsAccessDenied(err error) bool {
	return kindOf(err) == AccessDenied
}

// IsNameConflict checks if the error is a name conflict error
func IsNameConflict(err error) bool {
	return kindOf(err) == NameConflict
}

// IsInvalidName checks if the error is an invalid name error
func IsInvalidName(err error) bool {
	return kindOf(err) == InvalidName
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
