package retrier

import (
	"context"
	"log/slog"

	"github.com/flowops/sfnretry/pkg/directory"
)

// Classifier decides whether an execution failed at a specific named state by
// inspecting its event history.
type Classifier struct {
	dir    directory.ExecutionDirectory
	logger *slog.Logger
}

// NewClassifier creates a classifier over the given directory.
func NewClassifier(dir directory.ExecutionDirectory, logger *slog.Logger) *Classifier {
	return &Classifier{
		dir:    dir,
		logger: logger,
	}
}

// FailedAtState reports whether the execution's history records a step
// failure at exactly targetState (case-sensitive). A history fetch failure is
// logged and reported as false, so a false return does not assert the history
// was readable.
func (c *Classifier) FailedAtState(ctx context.Context, executionID, targetState string) bool {
	events, err := c.dir.GetExecutionHistory(ctx, executionID)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to fetch execution history, treating as non-match",
			"execution_id", executionID, "error", err)

		return false
	}

	for _, event := range events {
		if event.Type.IsStateFailure() && event.StateName == targetState {
			return true
		}
	}

	return false
}
