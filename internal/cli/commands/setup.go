package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/cli/config"
	"github.com/leapstack-labs/leapprep/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored on the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	mode := output.Mode(cfg.OutputFormat)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// getConfig returns the current configuration, or built-in defaults when
// a command runs outside the root command (tests, docs generation).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		LogLevel:     config.DefaultLogLevel,
		LogFormat:    config.DefaultLogFormat,
	}
}
