// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bstools/bstools/internal/config"
	"github.com/bstools/bstools/internal/discovery"
)

var completionShells = []cobra.Completion{"bash", "zsh", "fish", "powershell"}

// writeCompletion prints the completion script for shell.
//
// To enable completions:
//
//	eval "$(bs --completion bash)"
//	bs --completion fish > ~/.config/fish/completions/bs.fish
func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q (valid: bash, zsh, fish, powershell)", shell)
	}
}

// completeArgs offers the options at the path typed so far. Once the path
// reaches a command, completion falls back to file names for its arguments.
func completeArgs(cmd *cobra.Command, app *App, opts *rootOptions, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	svc, err := app.Services(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	out := svc.List(cmd.Context(), args)
	if len(out.Options) == 0 {
		return nil, cobra.ShellCompDirectiveDefault
	}
	return discovery.Names(out.Options), cobra.ShellCompDirectiveNoFileComp
}
