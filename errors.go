package govscrape

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// Codes describe the class of an error to callers; the pipeline uses them to
// decide whether a failure is retried, counted, or fatal to the whole run.
const (
	EINVALID      = "invalid"      // malformed input or response
	ENOTFOUND     = "not_found"    // path does not exist upstream
	EINTERNAL     = "internal"     // unexpected internal error
	ERATELIMIT    = "rate_limit"   // upstream 429 budget exhausted
	EUNAVAILABLE  = "unavailable"  // network failure or upstream 5xx
	EUNAUTHORIZED = "unauthorized" // upstream rejected credentials; fatal
	ESKIPPED      = "skipped"      // ineligible document type
	ENOCONTENT    = "no_content"   // document has no extractable body
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("govscrape error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an *Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
