package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cursor-reset/cursor-reset/internal/message"
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List backups of the identity record",
	Long:  `It lists the backups taken before each reset, most recent first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := initializeApp()
		if err != nil {
			return err
		}

		path, err := app.storageFile()
		if err != nil {
			return err
		}

		snapshots := app.backups.List(path)
		if len(snapshots) == 0 {
			message.Info("No backups found next to %s", path)
			return nil
		}

		message.Info("%d backup(s) of %s:", len(snapshots), path)
		for i, snapshot := range snapshots {
			message.Info("  %d. %s (%s)", i+1, snapshot.Name, snapshot.Time.Format("2006-01-02 15:04:05.000"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupsCmd)
}
