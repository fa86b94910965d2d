package directory

import (
	"errors"
	"fmt"
)

// Standard error kinds that all directory and dispatcher implementations use.
var (
	// ErrTransport indicates the external call itself failed: network,
	// auth, throttling, unknown identifier, or any service-side rejection.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse indicates the service replied, but the payload
	// violated the expected shape. Distinct from an empty result, which is
	// a valid zero-length success.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrConflict indicates a start was rejected because the execution name
	// already exists in scope.
	ErrConflict = errors.New("execution name already exists")

	// ErrValidation indicates malformed caller input, detected before any
	// external call is made.
	ErrValidation = errors.New("invalid input")
)

// CallError wraps a single failed call against the tracking service with
// enough context for operator-facing diagnostics.
type CallError struct {
	Op          string // Operation being performed (e.g. "ListFailedExecutions")
	ExecutionID string // Execution ARN if the call targeted one
	Detail      string // Raw diagnostic text or payload excerpt from the service
	Err         error  // Underlying error kind
}

func (e *CallError) Error() string {
	target := ""
	if e.ExecutionID != "" {
		target = fmt.Sprintf(" for execution %s", e.ExecutionID)
	}

	if e.Detail != "" {
		return fmt.Sprintf("%s failed%s: %v: %s", e.Op, target, e.Err, e.Detail)
	}

	return fmt.Sprintf("%s failed%s: %v", e.Op, target, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func (e *CallError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewCallError creates a call error with context.
func NewCallError(op, executionID, detail string, err error) *CallError {
	return &CallError{
		Op:          op,
		ExecutionID: executionID,
		Detail:      detail,
		Err:         err,
	}
}

// IsTransport checks if an error indicates an external-call failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsMalformedResponse checks if an error indicates an unparseable payload.
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsConflict checks if an error indicates a duplicate execution name.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
