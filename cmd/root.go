package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cursor-reset/cursor-reset/internal/message"
)

var silentMode bool
var verboseMode bool
var noEmoji bool
var noColor bool
var assumeYes bool
var configPath string

var rootCmd = &cobra.Command{
	Use:           "cursor-reset",
	Short:         "Reset the telemetry identifiers of the Cursor editor",
	Long:          `It closes Cursor if needed, backs up its storage.json and writes freshly generated machine and device identifiers, keeping every other setting.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		message.SetSilentMode(silentMode)
		message.SetVerboseMode(verboseMode)
		message.SetEmojiMode(!noEmoji)
		message.SetColorMode(!noColor)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd.Context())
	},
}

func Execute() {
	exitCode := run(os.Args[1:])
	waitForKeypress()
	os.Exit(exitCode)
}

// run executes the command line and returns the process exit code: 0 on
// success or a clean abort, 1 on any error.
func run(args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		message.Error("failed to execute command: %v", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&silentMode, "silent", false, "silent mode (hides everything except prompt/failure messages)")
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "verbose output (show everything, overrides silent mode)")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emojis")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors and emojis")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.cursor-reset)")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "close the running application without asking")
}
