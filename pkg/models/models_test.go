package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func validScope() Scope {
	return Scope{
		Region:           "eu-west-1",
		AccountID:        "123456789012",
		StateMachineName: "site-patcher",
	}
}

func TestScope_Validation_Valid(t *testing.T) {
	validate := validator.New()

	assert.NoError(t, validate.Struct(validScope()))
}

func TestScope_Validation_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scope)
	}{
		{"empty region", func(s *Scope) { s.Region = "" }},
		{"empty account", func(s *Scope) { s.AccountID = "" }},
		{"short account", func(s *Scope) { s.AccountID = "1234" }},
		{"long account", func(s *Scope) { s.AccountID = "1234567890123" }},
		{"non-numeric account", func(s *Scope) { s.AccountID = "12345678901x" }},
		{"empty state machine name", func(s *Scope) { s.StateMachineName = "" }},
	}

	validate := validator.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := validScope()
			tt.mutate(&scope)

			assert.Error(t, validate.Struct(scope))
		})
	}
}

func TestScope_StateMachineARN(t *testing.T) {
	arn := validScope().StateMachineARN()

	assert.Equal(t, "arn:aws:states:eu-west-1:123456789012:stateMachine:site-patcher", arn)
}

func TestScope_ExecutionARN(t *testing.T) {
	arn := validScope().ExecutionARN("run-1")

	assert.Equal(t, "arn:aws:states:eu-west-1:123456789012:execution:site-patcher:run-1", arn)
}

func TestHistoryEventType_IsStateFailure(t *testing.T) {
	assert.True(t, HistoryEventStateFailed.IsStateFailure())
	assert.False(t, HistoryEventStateEntered.IsStateFailure())
	assert.False(t, HistoryEventStateExited.IsStateFailure())
	assert.False(t, HistoryEventExecutionFailed.IsStateFailure())
}
