// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ringbuf.

package api

import "fmt"

// Common errors used across the library.
//
// ErrBufferFull and ErrBufferEmpty are expected steady-state results of the
// non-blocking ring contract, not faults; callers poll and retry.
var (
	ErrBufferFull      = fmt.Errorf("ring buffer is full")
	ErrBufferEmpty     = fmt.Errorf("ring buffer is empty")
	ErrInvalidCapacity = fmt.Errorf("invalid ring capacity")
	ErrStorageTooSmall = fmt.Errorf("storage shorter than requested capacity")
	ErrRingReleased    = fmt.Errorf("ring handle already released")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeFull
	ErrCodeEmpty
	ErrCodeReleased
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
