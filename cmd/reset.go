package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cursor-reset/cursor-reset/internal/message"
	"github.com/cursor-reset/cursor-reset/internal/reset"
)

// newOrchestrator builds the orchestrator for the current machine.
var newOrchestrator = func(reporter reset.Reporter) (*reset.Orchestrator, error) {
	app, err := initializeApp()
	if err != nil {
		return nil, err
	}
	return app.orchestrator(reporter)
}

func runReset(ctx context.Context) error {
	orchestrator, err := newOrchestrator(&console{assumeYes: assumeYes})
	if err != nil {
		return err
	}

	result, err := orchestrator.Run(ctx)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case reset.OutcomeNotInstalled:
		message.Info("Install %s first: https://www.cursor.com/downloads", orchestrator.AppName)
		return nil
	case reset.OutcomeDeclined:
		return nil
	}

	return printResult(orchestrator.AppName, result)
}

func printResult(appName string, result *reset.Result) error {
	ids, err := json.MarshalIndent(result.Ids, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal identifiers: %w", err)
	}

	message.Title("Identifiers reset, the new values are:")
	message.Listing(string(ids))
	message.Info("Identity record: %s", result.Path)
	message.Info("Resets so far: %d", result.ResetCount())
	for i, snapshot := range result.Snapshots {
		message.Info("  %d. %s", i+1, snapshot.Name)
	}
	message.Success("You can start %s again", appName)
	return nil
}

// console implements reset.Reporter on top of the message package.
type console struct {
	assumeYes bool
}

func (c *console) Step(format string, args ...any)    { message.Step(format, args...) }
func (c *console) Success(format string, args ...any) { message.Success(format, args...) }
func (c *console) Info(format string, args ...any)    { message.Info(format, args...) }
func (c *console) Warning(format string, args ...any) { message.Warning(format, args...) }

func (c *console) Confirm(question string) (bool, error) {
	if c.assumeYes {
		message.Debug("%s yes (--yes)", question)
		return true, nil
	}
	return message.Confirm(question)
}
