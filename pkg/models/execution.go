// Package models defines the core domain models for execution recovery.
package models

// ExecutionStatus represents the lifecycle state of a state machine execution
// as reported by the tracking service. Terminal once non-RUNNING.
type ExecutionStatus string

const (
	ExecutionStatusRunning   ExecutionStatus = "RUNNING"
	ExecutionStatusSucceeded ExecutionStatus = "SUCCEEDED"
	ExecutionStatusFailed    ExecutionStatus = "FAILED"
	ExecutionStatusTimedOut  ExecutionStatus = "TIMED_OUT"
	ExecutionStatusAborted   ExecutionStatus = "ABORTED"
)

// Execution is one run of a state machine. List calls populate the summary
// fields only; Input is present after a describe call.
type Execution struct {
	// ID is the execution ARN assigned by the service at start time.
	ID     string          `json:"id"`
	Name   string          `json:"name"   validate:"required"`
	Status ExecutionStatus `json:"status"`

	// StopDate is kept in its textual RFC3339 form. Date filtering is a
	// lexical prefix test over this string, so it is never parsed.
	StopDate string `json:"stop_date,omitempty"`

	// Input is the raw JSON payload the execution was started with. It is
	// carried into a retry byte-for-byte.
	Input string `json:"input,omitempty"`
}
