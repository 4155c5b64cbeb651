package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gleemora/survivors/internal/config"
	"github.com/gleemora/survivors/internal/logging"
)

// annotationConfigOptional marks commands that fall back to defaults when the
// config file is missing or invalid.
const annotationConfigOptional = "survivors/config-optional"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the survivors CLI.
// It loads configuration, wires up logging and tracing, and registers the
// list, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:          "survivors",
		Short:        "Browse the survivor community directory",
		Long:         "survivors: fetch the survivor list once and page through it in a table",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, loadErr := config.Load(configPath)
			if loadErr != nil {
				if cmd.Annotations[annotationConfigOptional] != "true" {
					return fmt.Errorf("loading configuration: %w", loadErr)
				}
				cfg = config.New()
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result

			if loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
				logger.Warn().Ctx(cmd.Context()).
					Err(loadErr).
					Str("command", cmd.Name()).
					Msg("configuration ignored, using defaults")
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			err := cleanupLogging(cmd, logResult, nil)
			logResult = nil
			return err
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to the console")
	cmd.PersistentFlags().String("config", "", "config file (default $SURVIVORS_HOME/config.yaml or ~/.survivors/config.yaml)")
	cmd.AddCommand(NewListCmd(), newConfigCmd(), NewVersionCmd(ver))

	// Cobra skips PersistentPostRunE when RunE fails; close the log there too.
	closeLogOnError(cmd, func(c *cobra.Command, runErr error) {
		_ = cleanupLogging(c, logResult, runErr)
		logResult = nil
	})

	return cmd
}

// closeLogOnError wraps the RunE of cmd and its descendants so onError runs
// whenever the command fails.
func closeLogOnError(cmd *cobra.Command, onError func(*cobra.Command, error)) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if err != nil {
				onError(c, err)
			}
			return err
		}
	}
	for _, sub := range cmd.Commands() {
		closeLogOnError(sub, onError)
	}
}

const rootCmdExample = `  # Browse survivors interactively
  survivors list

  # Show 25 rows per page
  survivors list --page-size 25

  # Print the second page as a plain table
  survivors list --plain --page 1

  # Print all records as JSON
  survivors list --output json --page-size all

  # Use a local API
  survivors list --endpoint http://localhost:8080/api/survivor

  # Write a default configuration file
  survivors config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
