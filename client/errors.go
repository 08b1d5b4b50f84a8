package client

import "fmt"

// ErrorCode classifies a failed operation.
type ErrorCode int

const (
	// ErrUnknown is an unclassified error.
	ErrUnknown ErrorCode = iota
	// ErrTransport is returned when the HTTP call itself could not
	// complete (DNS failure, connection refused, timeout).
	ErrTransport
	// ErrServerStatus is returned when the server answered with a
	// non-success status. The message carries the response body when
	// the body could be read.
	ErrServerStatus
	// ErrContract is returned when a transport-level success violated
	// the expected response shape (missing content type, no id, a body
	// that could not be read).
	ErrContract
	// ErrLocalIO is returned when writing a pulled payload to its
	// destination failed.
	ErrLocalIO
)

// Error represents a failed call against the scratch service.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("scratch: %s", e.Message)
}

// IsTransport returns true if the error indicates the call never completed.
func IsTransport(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrTransport
	}
	return false
}

// IsServerStatus returns true if the error carries a server-reported failure.
func IsServerStatus(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrServerStatus
	}
	return false
}

// IsContractViolation returns true if the server response was malformed.
func IsContractViolation(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrContract
	}
	return false
}

// IsLocalIO returns true if writing to the local destination failed.
func IsLocalIO(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrLocalIO
	}
	return false
}

func transportError(err error) *Error {
	return &Error{Code: ErrTransport, Message: fmt.Sprintf("unexpected request error %v", err)}
}

func contractError(reason string) *Error {
	return &Error{Code: ErrContract, Message: "malformed resp from server: " + reason}
}

func localIOError(err error) *Error {
	return &Error{Code: ErrLocalIO, Message: fmt.Sprintf("local io error: %v", err)}
}
