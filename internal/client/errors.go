package client

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred.
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error.
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates a non-200 status from the panel.
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body.
	ErrTypeParse
	// ErrTypeTimeout indicates a request timeout.
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the panel refused the connection.
	ErrTypeConnectionRefused
	// ErrTypeUnknown indicates an unexpected error.
	ErrTypeUnknown
)

// String returns a human-readable name for the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// PanelError represents an error during panel communication.
type PanelError struct {
	Type       ErrorType
	Message    string
	StatusCode int   // HTTP status code, when applicable
	Err        error // underlying error, when any
	Panel      string
}

// Error implements the error interface.
func (e *PanelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *PanelError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more
// specific PanelError.
func ClassifyNetworkError(err error, panel string) *PanelError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &PanelError{
			Type:    ErrTypeTimeout,
			Message: "request timed out",
			Err:     err,
			Panel:   panel,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &PanelError{
			Type:    ErrTypeConnectionRefused,
			Message: "panel refused connection",
			Err:     err,
			Panel:   panel,
		}
	}

	return &PanelError{
		Type:    ErrTypeNetwork,
		Message: "request failed",
		Err:     err,
		Panel:   panel,
	}
}
