package cmd

import (
	"os"

	"github.com/cursor-reset/cursor-reset/internal/backup"
	"github.com/cursor-reset/cursor-reset/internal/config"
	"github.com/cursor-reset/cursor-reset/internal/identity"
	"github.com/cursor-reset/cursor-reset/internal/message"
	"github.com/cursor-reset/cursor-reset/internal/platform"
	"github.com/cursor-reset/cursor-reset/internal/process"
	"github.com/cursor-reset/cursor-reset/internal/reset"
)

type application struct {
	env     platform.Env
	config  config.Config
	backups *backup.Store
}

func initializeApp() (*application, error) {
	env, err := platform.EnvFromOS()
	if err != nil {
		return nil, err
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath(env.HomeDir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	message.Debug("Using config %s: %+v", path, cfg)

	return &application{
		env:     env,
		config:  cfg,
		backups: backup.NewStore(),
	}, nil
}

func (a *application) storageFile() (string, error) {
	return platform.StorageFile(a.env, a.config.AppName)
}

func (a *application) orchestrator(reporter reset.Reporter) (*reset.Orchestrator, error) {
	table, err := process.NewProcessTable(a.env.GOOS, process.ExecRunner{})
	if err != nil {
		return nil, err
	}

	grace, err := a.config.Grace()
	if err != nil {
		return nil, err
	}

	guard := process.NewGuard(table, process.GuardConfig{
		Pattern:     a.config.ProcessPattern,
		SelfPattern: a.config.SelfPattern,
		SelfPID:     os.Getpid(),
		GracePeriod: grace,
	})

	return &reset.Orchestrator{
		AppName: a.config.AppName,
		IsInstalled: func() (bool, error) {
			return platform.IsInstalled(a.env, a.config.AppName, a.config.InstallPaths)
		},
		ResolvePath: a.storageFile,
		Guard:       guard,
		Backups:     a.backups,
		Generate:    identity.Generate,
		Reporter:    reporter,
	}, nil
}
