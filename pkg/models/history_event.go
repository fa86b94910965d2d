package models

// HistoryEventType tags one entry in an execution's normalized event history.
// The directory client folds the service's many wire-level event kinds into
// this small set; only step boundaries and failures matter downstream.
type HistoryEventType string

const (
	HistoryEventStateEntered    HistoryEventType = "StateEntered"
	HistoryEventStateExited     HistoryEventType = "StateExited"
	HistoryEventStateFailed     HistoryEventType = "StateFailed"
	HistoryEventExecutionFailed HistoryEventType = "ExecutionFailed"
)

// IsStateFailure reports whether the event records a failure at a named step,
// as opposed to an orchestration-level failure.
func (t HistoryEventType) IsStateFailure() bool {
	return t == HistoryEventStateFailed
}

// HistoryEvent is one entry of an execution's history. StateName is present
// on step-boundary and step-failure events and empty otherwise.
type HistoryEvent struct {
	Type      HistoryEventType `json:"type"`
	StateName string           `json:"state_name,omitempty"`
}
