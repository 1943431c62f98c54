// Package cli provides the command-line interface for LeapPrep.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/cli/commands"
	"github.com/leapstack-labs/leapprep/internal/cli/config"
	"github.com/leapstack-labs/leapprep/internal/cli/output"
	sharedcfg "github.com/leapstack-labs/leapprep/internal/config"
	_ "github.com/leapstack-labs/leapprep/internal/ops" // registers every operation
	"github.com/leapstack-labs/leapprep/internal/registry"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates the root command with one subcommand per
// operation group in the default registry.
func NewRootCmd() *cobra.Command {
	return newRootCmd(registry.Default)
}

func newRootCmd(reg *registry.Registry) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "leapprep",
		Short: "LeapPrep - Data preprocessing toolkit",
		Long: `LeapPrep applies common preprocessing transforms to JSON arrays and text.

Operations are grouped by concern (clean, numeric, text, struct). Each takes
one positional argument, a JSON array (VALUES) or a plain string (TEXT),
and prints the result.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := cfg.NewLogger(cmd.ErrOrStderr())
			if path := config.GetConfigFileUsed(); path != "" {
				logger.Debug("using config file", "path", path)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(config.WithLogger(ctx, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return commands.InvalidInput(err)
	})

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: leapprep.yaml in the working directory or a parent)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json|yaml|table)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", fixedCompletion(sharedcfg.OutputModes))
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", fixedCompletion(sharedcfg.LogLevels))
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", fixedCompletion(sharedcfg.LogFormats))

	for _, g := range reg.Groups() {
		rootCmd.AddCommand(commands.NewGroupCommand(g, reg.ByGroup(g.Name)))
	}
	rootCmd.AddCommand(commands.NewListCommand(reg))
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// Run executes the command tree with args and writes "Error: <err>" to
// stderr on failure. The returned error is classified by commands.ExitCode.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.NewRenderer(stdout, stderr, output.ModeAuto).Error(err)
		return err
	}
	return nil
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for LeapPrep.

To load completions:

Bash:
  $ source <(leapprep completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ leapprep completion bash > /etc/bash_completion.d/leapprep
  # macOS:
  $ leapprep completion bash > $(brew --prefix)/etc/bash_completion.d/leapprep

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ leapprep completion zsh > "${fpath[1]}/_leapprep"

Fish:
  $ leapprep completion fish | source

  # To load completions for each session, execute once:
  $ leapprep completion fish > ~/.config/fish/completions/leapprep.fish

PowerShell:
  PS> leapprep completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
