// Package errors provides structured error handling for the elastic
// list engine.
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
	// KindConfig indicates programmer misuse of the engine's
	// configuration surface, such as attaching a second content view
	// or enabling the header behind a conflicting decoration slot.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ElasticError represents a structured error in the elastic list engine.
type ElasticError struct {
	// Op is the operation that failed (e.g., "elastic.EnableUpdateHeader").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ElasticError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ElasticError) Unwrap() error {
	return e.Err
}

// ConfigError builds a KindConfig error for immediate return to the
// caller. Configuration errors signal misuse, not runtime conditions.
func ConfigError(op, format string, args ...any) *ElasticError {
	return &ElasticError{
		Op:        op,
		Kind:      KindConfig,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "elastic.fireUpdate").
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

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ElasticError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
