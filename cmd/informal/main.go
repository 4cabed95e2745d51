package main

import (
	"github.com/spf13/cobra"

	"github.com/informal-io/informal/cmd"
	"github.com/informal-io/informal/pkg/logging"
)

func rootMain(command *cobra.Command, arguments []string) error {
	// If no commands were given, then print help information and bail. We
	// don't have to worry about warning about arguments being present here
	// (which would be incorrect usage) because arguments can't even reach
	// this point (they will be mistaken for subcommands and an error will be
	// displayed).
	command.Help()

	// Success.
	return nil
}

var rootCommand = &cobra.Command{
	Use:   "informal",
	Short: "Informal acquires typed, validated input from interactive prompts.",
	Run:   cmd.Mainify(rootMain),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Propagate the log level before any command logic runs.
		logging.RootLogger.SetLevel(rootConfiguration.logLevel)
	},
}

var rootConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// logLevel stores the log level specified on the command line.
	logLevel logging.Level
}

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Add a persistent log level flag.
	rootConfiguration.logLevel = logging.LevelWarn
	rootCommand.PersistentFlags().Var(
		cmd.NewLevelValue(&rootConfiguration.logLevel),
		"log-level",
		"Set the log level (disabled|error|warn|info|debug|trace)",
	)

	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		guessCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
