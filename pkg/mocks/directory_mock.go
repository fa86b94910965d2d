// Package mocks provides testify mocks for the directory ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flowops/sfnretry/pkg/models"
)

// MockExecutionDirectory is a mock implementation of the
// directory.ExecutionDirectory interface.
type MockExecutionDirectory struct {
	mock.Mock
}

func (m *MockExecutionDirectory) ListFailedExecutions(ctx context.Context, scope models.Scope, limit int32) ([]models.Execution, error) {
	args := m.Called(ctx, scope, limit)

	executions, _ := args.Get(0).([]models.Execution)

	return executions, args.Error(1)
}

func (m *MockExecutionDirectory) DescribeExecution(ctx context.Context, executionID string) (*models.Execution, error) {
	args := m.Called(ctx, executionID)

	execution, _ := args.Get(0).(*models.Execution)

	return execution, args.Error(1)
}

func (m *MockExecutionDirectory) GetExecutionHistory(ctx context.Context, executionID string) ([]models.HistoryEvent, error) {
	args := m.Called(ctx, executionID)

	events, _ := args.Get(0).([]models.HistoryEvent)

	return events, args.Error(1)
}

// MockRestartDispatcher is a mock implementation of the
// directory.RestartDispatcher interface.
type MockRestartDispatcher struct {
	mock.Mock
}

func (m *MockRestartDispatcher) StartExecution(ctx context.Context, scope models.Scope, name, input string) (string, error) {
	args := m.Called(ctx, scope, name, input)

	return args.String(0), args.Error(1)
}
