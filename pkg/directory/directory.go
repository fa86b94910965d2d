// Package directory defines the read and write ports against the execution
// tracking service, plus the error taxonomy shared by their implementations.
package directory

import (
	"context"

	"github.com/flowops/sfnretry/pkg/models"
)

// MaxListResults is the ceiling for a single list call's page size; limits
// above it are clamped down to it, limits of zero or below default to it.
const MaxListResults = 100

// ExecutionDirectory is the read side of the tracking service. List is cheap
// and summary-only; Describe and History cost one call per execution, so
// callers filter on summaries first.
type ExecutionDirectory interface {
	// ListFailedExecutions returns up to limit executions of the scoped
	// state machine in status FAILED, subject to the MaxListResults
	// ceiling. Results are not filtered by date; that is the caller's
	// responsibility. A zero-length result is a valid success, distinct
	// from any error.
	ListFailedExecutions(ctx context.Context, scope models.Scope, limit int32) ([]models.Execution, error)

	// DescribeExecution returns the full execution, including its input.
	DescribeExecution(ctx context.Context, executionID string) (*models.Execution, error)

	// GetExecutionHistory returns the execution's normalized event history
	// in recording order.
	GetExecutionHistory(ctx context.Context, executionID string) ([]models.HistoryEvent, error)
}

// RestartDispatcher is the write side: it starts exactly one new execution
// per successful call and has no effect on failure.
type RestartDispatcher interface {
	// StartExecution starts a new execution with the given name and input.
	// Input passes through byte-for-byte; an empty input defaults to "{}".
	// A duplicate name yields ErrConflict.
	StartExecution(ctx context.Context, scope models.Scope, name, input string) (string, error)
}
