package directory

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallError_WrapsKind(t *testing.T) {
	err := NewCallError("StartExecution", "arn:aws:states:us-east-1:123456789012:execution:sm:a-r",
		"ExecutionAlreadyExists", ErrConflict)

	assert.ErrorIs(t, err, ErrConflict)
	assert.True(t, IsConflict(err))
	assert.False(t, IsTransport(err))
	assert.Contains(t, err.Error(), "StartExecution failed")
	assert.Contains(t, err.Error(), "ExecutionAlreadyExists")
}

func TestCallError_SurvivesFurtherWrapping(t *testing.T) {
	inner := NewCallError("ListFailedExecutions", "", "access denied", ErrTransport)
	wrapped := fmt.Errorf("listing failed executions: %w", inner)

	assert.True(t, IsTransport(wrapped))

	var callErr *CallError
	assert.True(t, errors.As(wrapped, &callErr))
	assert.Equal(t, "ListFailedExecutions", callErr.Op)
}

func TestCallError_WithoutExecutionTarget(t *testing.T) {
	err := NewCallError("ListFailedExecutions", "", "", ErrMalformedResponse)

	assert.Equal(t, "ListFailedExecutions failed: malformed response", err.Error())
	assert.True(t, IsMalformedResponse(err))
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrTransport, ErrMalformedResponse, ErrConflict, ErrValidation}

	for i, kind := range kinds {
		for j, other := range kinds {
			if i == j {
				continue
			}

			assert.NotErrorIs(t, kind, other)
		}
	}
}
