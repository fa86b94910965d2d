// Package awssfn implements the directory ports against AWS Step Functions.
package awssfn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sfn/types"
	"github.com/aws/smithy-go"
	"github.com/tidwall/gjson"

	"github.com/flowops/sfnretry/pkg/directory"
	"github.com/flowops/sfnretry/pkg/models"
)

// StatesAPI is the set of Step Functions calls the client uses. The concrete
// *sfn.Client satisfies it; tests substitute a mock.
type StatesAPI interface {
	ListExecutions(ctx context.Context, params *sfn.ListExecutionsInput, optFns ...func(*sfn.Options)) (*sfn.ListExecutionsOutput, error)
	DescribeExecution(ctx context.Context, params *sfn.DescribeExecutionInput, optFns ...func(*sfn.Options)) (*sfn.DescribeExecutionOutput, error)
	GetExecutionHistory(ctx context.Context, params *sfn.GetExecutionHistoryInput, optFns ...func(*sfn.Options)) (*sfn.GetExecutionHistoryOutput, error)
	StartExecution(ctx context.Context, params *sfn.StartExecutionInput, optFns ...func(*sfn.Options)) (*sfn.StartExecutionOutput, error)
}

// Client adapts the Step Functions API to the ExecutionDirectory and
// RestartDispatcher ports, normalizing results and error kinds.
type Client struct {
	api StatesAPI
}

// New creates a client over an already-resolved AWS configuration.
func New(cfg aws.Config) *Client {
	return &Client{api: sfn.NewFromConfig(cfg)}
}

// NewWithAPI creates a client over an explicit API implementation.
func NewWithAPI(api StatesAPI) *Client {
	return &Client{api: api}
}

// LoadConfig resolves AWS credentials from the named shared-config profile.
// Credential validity is not checked here; it surfaces as a transport error
// from the first call.
func LoadConfig(ctx context.Context, region, profile string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithSharedConfigProfile(profile),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config for profile %q: %w", profile, err)
	}

	return cfg, nil
}

func (c *Client) ListFailedExecutions(ctx context.Context, scope models.Scope, limit int32) ([]models.Execution, error) {
	if limit <= 0 || limit > directory.MaxListResults {
		limit = directory.MaxListResults
	}

	out, err := c.api.ListExecutions(ctx, &sfn.ListExecutionsInput{
		StateMachineArn: aws.String(scope.StateMachineARN()),
		StatusFilter:    types.ExecutionStatusFailed,
		MaxResults:      limit,
	})
	if err != nil {
		return nil, directory.NewCallError("ListFailedExecutions", "", apiDetail(err), directory.ErrTransport)
	}

	executions := make([]models.Execution, 0, len(out.Executions))

	for _, item := range out.Executions {
		if item.ExecutionArn == nil || item.Name == nil {
			return nil, directory.NewCallError("ListFailedExecutions", "",
				fmt.Sprintf("execution item missing identifier: %+v", item),
				directory.ErrMalformedResponse)
		}

		executions = append(executions, models.Execution{
			ID:       aws.ToString(item.ExecutionArn),
			Name:     aws.ToString(item.Name),
			Status:   models.ExecutionStatus(item.Status),
			StopDate: formatStopDate(item.StopDate),
		})
	}

	return executions, nil
}

func (c *Client) DescribeExecution(ctx context.Context, executionID string) (*models.Execution, error) {
	out, err := c.api.DescribeExecution(ctx, &sfn.DescribeExecutionInput{
		ExecutionArn: aws.String(executionID),
	})
	if err != nil {
		return nil, directory.NewCallError("DescribeExecution", executionID, apiDetail(err), directory.ErrTransport)
	}

	input := aws.ToString(out.Input)
	if input != "" && !gjson.Valid(input) {
		return nil, directory.NewCallError("DescribeExecution", executionID,
			excerpt(input), directory.ErrMalformedResponse)
	}

	return &models.Execution{
		ID:       aws.ToString(out.ExecutionArn),
		Name:     aws.ToString(out.Name),
		Status:   models.ExecutionStatus(out.Status),
		StopDate: formatStopDate(out.StopDate),
		Input:    input,
	}, nil
}

func (c *Client) GetExecutionHistory(ctx context.Context, executionID string) ([]models.HistoryEvent, error) {
	var (
		events    []models.HistoryEvent
		nextToken *string
	)

	// lastEntered tracks the most recently entered state so that failure
	// events, which carry no state name on the wire, can be attributed.
	lastEntered := ""

	for {
		out, err := c.api.GetExecutionHistory(ctx, &sfn.GetExecutionHistoryInput{
			ExecutionArn: aws.String(executionID),
			NextToken:    nextToken,
		})
		if err != nil {
			return nil, directory.NewCallError("GetExecutionHistory", executionID, apiDetail(err), directory.ErrTransport)
		}

		for _, event := range out.Events {
			normalized, ok := normalizeEvent(event, &lastEntered)
			if ok {
				events = append(events, normalized)
			}
		}

		if out.NextToken == nil {
			return events, nil
		}

		nextToken = out.NextToken
	}
}

func (c *Client) StartExecution(ctx context.Context, scope models.Scope, name, input string) (string, error) {
	if input == "" {
		input = "{}"
	}

	out, err := c.api.StartExecution(ctx, &sfn.StartExecutionInput{
		StateMachineArn: aws.String(scope.StateMachineARN()),
		Name:            aws.String(name),
		Input:           aws.String(input),
	})
	if err != nil {
		var exists *types.ExecutionAlreadyExists
		if errors.As(err, &exists) {
			return "", directory.NewCallError("StartExecution", scope.ExecutionARN(name),
				apiDetail(err), directory.ErrConflict)
		}

		return "", directory.NewCallError("StartExecution", scope.ExecutionARN(name),
			apiDetail(err), directory.ErrTransport)
	}

	return aws.ToString(out.ExecutionArn), nil
}

// normalizeEvent folds the service's many wire-level event kinds into the
// small set the classifier cares about. Events of other kinds are dropped.
func normalizeEvent(event types.HistoryEvent, lastEntered *string) (models.HistoryEvent, bool) {
	kind := string(event.Type)

	switch {
	case strings.HasSuffix(kind, "StateEntered"):
		name := ""
		if event.StateEnteredEventDetails != nil {
			name = aws.ToString(event.StateEnteredEventDetails.Name)
		}

		*lastEntered = name

		return models.HistoryEvent{Type: models.HistoryEventStateEntered, StateName: name}, true

	case strings.HasSuffix(kind, "StateExited"):
		name := ""
		if event.StateExitedEventDetails != nil {
			name = aws.ToString(event.StateExitedEventDetails.Name)
		}

		return models.HistoryEvent{Type: models.HistoryEventStateExited, StateName: name}, true

	case kind == "ExecutionFailed":
		return models.HistoryEvent{Type: models.HistoryEventExecutionFailed}, true

	case isStateFailureKind(kind):
		return models.HistoryEvent{Type: models.HistoryEventStateFailed, StateName: *lastEntered}, true
	}

	return models.HistoryEvent{}, false
}

// isStateFailureKind reports whether a wire event kind records a failure or
// timeout inside a state, attributable to the most recently entered one.
func isStateFailureKind(kind string) bool {
	switch kind {
	case "TaskFailed", "TaskTimedOut",
		"ActivityFailed", "ActivityTimedOut",
		"LambdaFunctionFailed", "LambdaFunctionTimedOut",
		"TaskStateAborted":
		return true
	}

	return false
}

func formatStopDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

// apiDetail extracts the raw diagnostic text the service attached to a failed
// call, for operator visibility.
func apiDetail(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}

	return err.Error()
}

// excerpt trims a payload for inclusion in a diagnostic.
func excerpt(payload string) string {
	const maxExcerpt = 200

	if len(payload) > maxExcerpt {
		return payload[:maxExcerpt] + "..."
	}

	return payload
}
