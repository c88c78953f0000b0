// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/bstools/bstools/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the parsed global flags for one invocation.
type rootOptions struct {
	verbose    bool
	configPath string
	list       bool
	dryRun     bool
	showConfig string
	completion string
}

// newRootCommand builds the bs command. There are no subcommands: every
// positional argument is a command path segment or a command argument.
func newRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bs [flags] [path...] [args...]",
		Short: "Run commands from a directory of runners",
		Long: TitleStyle.Render("bs") + SubtitleStyle.Render(" - Run commands from a directory of runners") + `

bs looks up its arguments under $` + config.EnvHome + ` in four runner directories:
executables, python, commands and java. The first arguments name a path
through the directories and the rest are handed to the command found there.

` + SubtitleStyle.Render("Runners:") + `
  executables   run the file directly
  python        run the file with $BS_PYTHON
  commands      expand the one-line alias in the file (%s takes an argument)
  java          run the archive with $BS_JAVA -jar

` + SubtitleStyle.Render("Examples:") + `
  bs                        List the top-level options
  bs scripts                List the options in the scripts directory
  bs scripts deploy --prod  Run scripts/deploy with --prod
  bs -n scripts deploy      Show what would run without running it`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return completeArgs(cmd, app, opts, args, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, opts, args)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	flags := rootCmd.Flags()
	// Flags after the first positional belong to the dispatched command.
	flags.SetInterspersed(false)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/bs/config.cue)")
	flags.BoolVarP(&opts.list, "list", "l", false, "list the options at the given path without running anything")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "print the command that would run without running it")
	flags.StringVar(&opts.showConfig, "show-config", "", "print the effective configuration (cue, yaml, toml or json)")
	flags.Lookup("show-config").NoOptDefVal = string(config.FormatCUE)
	flags.StringVar(&opts.completion, "completion", "", "print a completion script (bash, zsh, fish or powershell)")
	rootCmd.MarkFlagsMutuallyExclusive("list", "dry-run")

	formats := make([]cobra.Completion, 0, len(config.Formats()))
	for _, f := range config.Formats() {
		formats = append(formats, string(f))
	}
	_ = rootCmd.RegisterFlagCompletionFunc("show-config", cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("completion", cobra.FixedCompletions(completionShells, cobra.ShellCompDirectiveNoFileComp))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs bs with the process arguments and exits with its status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
		fang.WithErrorHandler(handleError),
	); err != nil {
		os.Exit(exitCodeOf(err))
	}
}

// handleError prints errors that RunE did not render itself, such as flag
// parsing failures. ExitErrors are always rendered before they are returned.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
