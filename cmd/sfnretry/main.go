package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	cli "github.com/urfave/cli/v3"

	"github.com/flowops/sfnretry/pkg/directory"
	"github.com/flowops/sfnretry/pkg/directory/awssfn"
	"github.com/flowops/sfnretry/pkg/log"
	"github.com/flowops/sfnretry/pkg/models"
	"github.com/flowops/sfnretry/pkg/retrier"
)

func main() {
	cmd := &cli.Command{
		Name:                  "sfnretry",
		EnableShellCompletion: true,
		Usage:                 "Restart state machine executions that failed at a given state",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "date",
				Usage:    "Calendar date (YYYY-MM-DD) the executions failed on",
				Required: true,
				Sources:  cli.EnvVars("SFNRETRY_DATE"),
			},
			&cli.StringFlag{
				Name:     "region",
				Usage:    "AWS region of the state machine",
				Required: true,
				Sources:  cli.EnvVars("SFNRETRY_REGION", "AWS_REGION"),
			},
			&cli.StringFlag{
				Name:     "account-id",
				Usage:    "AWS account ID owning the state machine",
				Required: true,
				Sources:  cli.EnvVars("SFNRETRY_ACCOUNT_ID"),
			},
			&cli.StringFlag{
				Name:     "profile",
				Usage:    "AWS shared-config profile used for credentials",
				Required: true,
				Sources:  cli.EnvVars("SFNRETRY_PROFILE", "AWS_PROFILE"),
			},
			&cli.StringFlag{
				Name:     "state-machine",
				Usage:    "Name of the state machine whose executions to retry",
				Required: true,
				Sources:  cli.EnvVars("SFNRETRY_STATE_MACHINE"),
			},
			&cli.StringFlag{
				Name:    "target-state",
				Usage:   "State whose failure qualifies an execution for retry",
				Value:   "PatchDrupalSection",
				Sources: cli.EnvVars("SFNRETRY_TARGET_STATE"),
			},
			&cli.IntFlag{
				Name:    "cooldown",
				Usage:   "Seconds to wait after each successful restart",
				Value:   5,
				Sources: cli.EnvVars("SFNRETRY_COOLDOWN"),
			},
			&cli.IntFlag{
				Name:    "max-results",
				Usage:   "Page cap for the failed-execution listing (at most 100)",
				Value:   100,
				Sources: cli.EnvVars("SFNRETRY_MAX_RESULTS"),
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Usage:   "List and classify without starting anything",
				Sources: cli.EnvVars("SFNRETRY_DRY_RUN"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Report per-candidate progress and enable debug logging",
				Sources: cli.EnvVars("SFNRETRY_VERBOSE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: run,
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command *cli.Command) error {
	logLevel := command.String("log-level")
	if command.Bool("verbose") {
		logLevel = "debug"
	}

	log.Setup(logLevel)

	runID := "run-" + uuid.New().String()[:8]
	logger := log.WithModule("sfnretry").With("run_id", runID)

	scope := models.Scope{
		Region:           command.String("region"),
		AccountID:        command.String("account-id"),
		StateMachineName: command.String("state-machine"),
	}

	cfg, err := awssfn.LoadConfig(ctx, scope.Region, command.String("profile"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	client := awssfn.New(cfg)

	reporter := retrier.NewReporter(os.Stdout,
		isatty.IsTerminal(os.Stdout.Fd()),
		command.Bool("verbose"))

	orchestrator := retrier.NewOrchestrator(retrier.Config{
		Dir:         client,
		Dispatcher:  client,
		TargetState: command.String("target-state"),
		MaxResults:  int32(command.Int("max-results")),
		Cooldown:    time.Duration(command.Int("cooldown")) * time.Second,
		DryRun:      command.Bool("dry-run"),
		Reporter:    reporter,
		Logger:      logger,
	})

	summary, err := orchestrator.Run(ctx, scope, command.String("date"))
	if err != nil {
		if errors.Is(err, directory.ErrValidation) {
			return cli.Exit(err.Error(), 1)
		}

		return cli.Exit(fmt.Sprintf("run aborted: %v", err), 1)
	}

	if !summary.Succeeded() {
		return cli.Exit(fmt.Sprintf("found %d candidate(s) but restarted none", summary.Total), 1)
	}

	return nil
}
