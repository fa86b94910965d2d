package models

import "fmt"

// Scope identifies which state machine's executions to query and start
// against: the (region, account, state machine name) triple.
type Scope struct {
	Region           string `json:"region"             validate:"required"`
	AccountID        string `json:"account_id"         validate:"required,len=12,numeric"`
	StateMachineName string `json:"state_machine_name" validate:"required"`
}

// StateMachineARN renders the scope as the service's routing address. This is
// plain string templating; whether the state machine actually exists only
// surfaces as a transport error from the first call that uses the ARN.
func (s Scope) StateMachineARN() string {
	return fmt.Sprintf("arn:aws:states:%s:%s:stateMachine:%s",
		s.Region, s.AccountID, s.StateMachineName)
}

// ExecutionARN renders the address of a named execution inside the scope.
func (s Scope) ExecutionARN(name string) string {
	return fmt.Sprintf("arn:aws:states:%s:%s:execution:%s:%s",
		s.Region, s.AccountID, s.StateMachineName, name)
}
