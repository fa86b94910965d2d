package retrier

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"

	"github.com/flowops/sfnretry/pkg/directory"
	"github.com/flowops/sfnretry/pkg/models"
)

// DefaultCooldown is the pause after each successful dispatch, keeping the
// request rate against the tracking service down.
const DefaultCooldown = 5 * time.Second

// Summary is the terminal tally of one orchestrator run.
type Summary struct {
	// Total is the number of candidates: failed executions matching the
	// requested date, before classification.
	Total int `json:"total"`
	// Restarted counts successful dispatches (or, in dry-run, executions
	// that would have been dispatched).
	Restarted int `json:"restarted"`
	// FailedToRestart counts candidates whose describe or dispatch failed.
	FailedToRestart int `json:"failed_to_restart"`
	// Skipped counts candidates that did not fail at the target state.
	Skipped int `json:"skipped"`
}

// Succeeded reports whether the run was useful: something was restarted, or
// there was nothing to do. Candidates that all failed to restart is a failure
// outcome even though nothing crashed.
func (s *Summary) Succeeded() bool {
	return s.Restarted > 0 || s.Total == 0
}

// Config carries the orchestrator's collaborators and knobs. Dir and
// Dispatcher are required; zero values of the rest get working defaults.
type Config struct {
	Dir        directory.ExecutionDirectory
	Dispatcher directory.RestartDispatcher

	// TargetState is the state whose failure qualifies an execution for
	// retry.
	TargetState string

	// Cooldown is the pause after each successful dispatch. Zero means
	// DefaultCooldown.
	Cooldown time.Duration

	// MaxResults caps the list page size. Zero or anything above the
	// directory.MaxListResults ceiling means the ceiling.
	MaxResults int32

	// DryRun lists and classifies without dispatching.
	DryRun bool

	// MatchesDate overrides the date-filter policy. Nil means
	// MatchesRunDate.
	MatchesDate DateMatcher

	// Clock overrides the cooldown clock. Nil means the real clock.
	Clock clockwork.Clock

	Reporter *Reporter
	Logger   *slog.Logger
}

// Orchestrator drives the single-pass batch: list, filter by date, classify,
// derive, dispatch, cool down, tally. Strictly sequential; per-item failures
// are recorded and the batch continues.
type Orchestrator struct {
	dir         directory.ExecutionDirectory
	dispatcher  directory.RestartDispatcher
	classifier  *Classifier
	targetState string
	maxResults  int32
	cooldown    time.Duration
	dryRun      bool
	matchesDate DateMatcher
	clock       clockwork.Clock
	reporter    *Reporter
	logger      *slog.Logger
	validate    *validator.Validate
}

// NewOrchestrator creates an orchestrator from the given configuration.
func NewOrchestrator(cfg Config) *Orchestrator {
	if cfg.Cooldown == 0 {
		cfg.Cooldown = DefaultCooldown
	}

	if cfg.MaxResults <= 0 || cfg.MaxResults > directory.MaxListResults {
		cfg.MaxResults = directory.MaxListResults
	}

	if cfg.MatchesDate == nil {
		cfg.MatchesDate = MatchesRunDate
	}

	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.Reporter == nil {
		cfg.Reporter = NewReporter(os.Stdout, false, false)
	}

	return &Orchestrator{
		dir:         cfg.Dir,
		dispatcher:  cfg.Dispatcher,
		classifier:  NewClassifier(cfg.Dir, cfg.Logger),
		targetState: cfg.TargetState,
		maxResults:  cfg.MaxResults,
		cooldown:    cfg.Cooldown,
		dryRun:      cfg.DryRun,
		matchesDate: cfg.MatchesDate,
		clock:       cfg.Clock,
		reporter:    cfg.Reporter,
		logger:      cfg.Logger,
		validate:    validator.New(),
	}
}

// Run executes one batch over the executions of scope that stopped on date
// (YYYY-MM-DD). A non-nil error means the run never got to per-item work:
// malformed input or a listing failure. Per-item failures land in the
// summary, never in the error.
func (o *Orchestrator) Run(ctx context.Context, scope models.Scope, date string) (*Summary, error) {
	if err := o.validateRequest(scope, date); err != nil {
		return nil, err
	}

	executions, err := o.dir.ListFailedExecutions(ctx, scope, o.maxResults)
	if err != nil {
		return nil, fmt.Errorf("listing failed executions: %w", err)
	}

	candidates := make([]models.Execution, 0, len(executions))

	for _, execution := range executions {
		if o.matchesDate(execution.StopDate, date) {
			candidates = append(candidates, execution)
			o.reporter.Candidate(execution.Name, execution.StopDate)
		}
	}

	o.logger.InfoContext(ctx, "Collected retry candidates",
		"listed", len(executions), "date", date, "candidates", len(candidates))

	summary := &Summary{Total: len(candidates)}

	for i, candidate := range candidates {
		dispatched := o.processCandidate(ctx, scope, candidate, summary)

		// The cooldown rate-limits dispatches only. Nothing external is
		// touched after a skip or a failure, and nothing follows the
		// last item.
		if dispatched && !o.dryRun && i < len(candidates)-1 {
			o.clock.Sleep(o.cooldown)
		}
	}

	o.reporter.Summary(summary)

	return summary, nil
}

// processCandidate runs classify, derive, and dispatch for one candidate and
// updates the summary. Returns true only when a dispatch succeeded.
func (o *Orchestrator) processCandidate(ctx context.Context, scope models.Scope, candidate models.Execution, summary *Summary) bool {
	logger := o.logger.With("execution_id", candidate.ID, "name", candidate.Name)

	if !o.classifier.FailedAtState(ctx, candidate.ID, o.targetState) {
		logger.DebugContext(ctx, "Execution did not fail at target state, skipping",
			"target_state", o.targetState)
		summary.Skipped++
		o.reporter.Skipped(candidate.Name, o.targetState)

		return false
	}

	full, err := o.dir.DescribeExecution(ctx, candidate.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to describe execution", "error", err)
		summary.FailedToRestart++
		o.reporter.RestartFailed(candidate.Name, err)

		return false
	}

	newName := DeriveRetryName(candidate.Name)

	if o.dryRun {
		summary.Restarted++
		o.reporter.WouldRestart(candidate.Name, newName)

		return false
	}

	executionID, err := o.dispatcher.StartExecution(ctx, scope, newName, full.Input)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to start retry execution",
			"new_name", newName, "error", err)
		summary.FailedToRestart++
		o.reporter.RestartFailed(candidate.Name, err)

		return false
	}

	logger.InfoContext(ctx, "Started retry execution",
		"new_name", newName, "new_execution_id", executionID)
	summary.Restarted++
	o.reporter.Restarted(candidate.Name, newName)

	return true
}

func (o *Orchestrator) validateRequest(scope models.Scope, date string) error {
	if err := o.validate.Var(date, "required,datetime=2006-01-02"); err != nil {
		return fmt.Errorf("%w: date %q is not of the form YYYY-MM-DD", directory.ErrValidation, date)
	}

	if err := o.validate.Struct(scope); err != nil {
		return fmt.Errorf("%w: %v", directory.ErrValidation, err)
	}

	if o.targetState == "" {
		return fmt.Errorf("%w: target state must not be empty", directory.ErrValidation)
	}

	return nil
}
