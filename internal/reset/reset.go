// Package reset sequences a reset of the identity record: stop the guarded
// application, snapshot the record, then write fresh identifiers.
package reset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cursor-reset/cursor-reset/internal/backup"
	"github.com/cursor-reset/cursor-reset/internal/identity"
	"github.com/cursor-reset/cursor-reset/internal/process"
	"github.com/cursor-reset/cursor-reset/internal/storage"
)

type Outcome int

const (
	OutcomeReset Outcome = iota
	OutcomeNotInstalled
	OutcomeDeclined
)

// Reporter is the console the orchestrator talks through.
type Reporter interface {
	Step(format string, args ...any)
	Success(format string, args ...any)
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Confirm(question string) (bool, error)
}

type Guard interface {
	Detect(ctx context.Context) (process.Status, error)
	Terminate(ctx context.Context) (process.Status, error)
}

type Backups interface {
	Snapshot(path string) (string, error)
	List(path string) []backup.Snapshot
}

type Result struct {
	Outcome      Outcome
	Ids          identity.Triple
	Path         string
	SnapshotPath string
	Snapshots    []backup.Snapshot
}

// ResetCount is the number of snapshots taken so far, one per reset.
func (r *Result) ResetCount() int {
	return len(r.Snapshots)
}

type Orchestrator struct {
	AppName     string
	IsInstalled func() (bool, error)
	ResolvePath func() (string, error)
	Guard       Guard
	Backups     Backups
	Generate    func() identity.Triple
	Reporter    Reporter
}

func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	o.Reporter.Step("Checking %s installation...", o.AppName)
	installed, err := o.IsInstalled()
	if err != nil {
		return nil, fmt.Errorf("failed to check installation: %w", err)
	}
	if !installed {
		o.Reporter.Warning("%s is not installed", o.AppName)
		return &Result{Outcome: OutcomeNotInstalled}, nil
	}
	o.Reporter.Success("%s is installed", o.AppName)

	o.Reporter.Step("Checking whether %s is running...", o.AppName)
	status, err := o.Guard.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check whether %s is running: %w", o.AppName, err)
	}
	if status == process.StatusRunning {
		answer, err := o.Reporter.Confirm(fmt.Sprintf("%s is running. Do you want to close it now?", o.AppName))
		if err != nil {
			return nil, fmt.Errorf("failed to get user input: %w", err)
		}
		if !answer {
			o.Reporter.Warning("Close %s and run this tool again", o.AppName)
			return &Result{Outcome: OutcomeDeclined}, nil
		}
		o.Reporter.Step("Closing %s...", o.AppName)
		if _, err := o.Guard.Terminate(ctx); err != nil {
			return nil, fmt.Errorf("failed to close %s: %w", o.AppName, err)
		}
		o.Reporter.Success("%s closed", o.AppName)
	} else {
		o.Reporter.Success("%s is not running", o.AppName)
	}

	path, err := o.ResolvePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity record path: %w", err)
	}
	if err := storage.EnsureDir(path); err != nil {
		return nil, err
	}

	o.Reporter.Step("Backing up %s...", path)
	snapshotPath, err := o.Backups.Snapshot(path)
	if err != nil {
		return nil, err
	}
	if snapshotPath == "" {
		o.Reporter.Info("No identity record yet, nothing to back up")
	} else {
		o.Reporter.Success("Backup created: %s", filepath.Base(snapshotPath))
	}

	record := storage.Load(path)
	if len(record) == 0 {
		o.Reporter.Info("No existing configuration found, a new one will be created")
	}

	ids := o.Generate()
	if err := storage.MergeAndSave(record, ids, path); err != nil {
		return nil, err
	}
	o.Reporter.Success("New identifiers saved")

	return &Result{
		Outcome:      OutcomeReset,
		Ids:          ids,
		Path:         path,
		SnapshotPath: snapshotPath,
		Snapshots:    o.Backups.List(path),
	}, nil
}
