// Package errors provides structured error reporting for the button runtime.
//
// Nothing in the interaction path fails hard: a missing element or an
// unavailable ripple degrades silently. What does go wrong (bad configuration,
// a panicking listener, a render that cannot be serialized) is reported
// through a single replaceable [ErrorHandler].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid variant configuration or script.
	KindConfig
	// KindEvent indicates a failure while dispatching an input event.
	KindEvent
	// KindMount indicates a ripple mount that could not complete.
	KindMount
	// KindRender indicates a rendering or serialization error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindEvent:
		return "event"
	case KindMount:
		return "mount"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error raised by the button runtime.
type Error struct {
	// Op is the operation that failed (e.g., "button.Surface.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Surface is the id of the surface involved, if any.
	Surface string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Surface != "" {
		return fmt.Sprintf("%s [%s] surface=%s: %v", e.Op, e.Kind, e.Surface, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dom.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ValidationError describes a configuration field that failed validation.
type ValidationError struct {
	// Field is the yaml-style path of the offending field (e.g., "steps[2].op").
	Field string
	// Message is a human readable description.
	Message string
	// Err is the underlying validator error, if any.
	Err error
}

// NewValidationError builds a ValidationError.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
