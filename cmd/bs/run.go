// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bstools/bstools/internal/app/execute"
	"github.com/bstools/bstools/internal/config"
	"github.com/bstools/bstools/internal/fsprobe"
)

// run loads configuration, resolves args and renders the outcome. Every
// failure is rendered here and returned as an *ExitError.
func run(cmd *cobra.Command, app *App, opts *rootOptions, args []string) error {
	ctx := cmd.Context()

	cfg, loadErr := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	verbose := opts.verbose || (cfg != nil && cfg.UI.Verbose)
	restore := installLogger(newLogger(app.stderr, verbose))
	defer restore()

	r := &renderer{stdout: app.stdout, stderr: app.stderr, verbose: verbose}
	if cfg != nil {
		r.colorScheme = cfg.UI.ColorScheme
	}
	if loadErr != nil {
		return r.fail(loadErr)
	}

	switch {
	case opts.completion != "":
		if err := writeCompletion(cmd.Root(), opts.completion, app.stdout); err != nil {
			return r.fail(err)
		}
		return nil
	case opts.showConfig != "":
		out, err := config.Render(cfg, config.Format(opts.showConfig))
		if err != nil {
			return r.fail(err)
		}
		_, err = app.stdout.Write(out)
		return err
	}

	svc, err := app.Services(cfg)
	if err != nil {
		return r.fail(err)
	}

	var out execute.Outcome
	switch {
	case opts.list:
		out = svc.List(ctx, args)
	case opts.dryRun:
		out, err = svc.Plan(ctx, args)
	default:
		out, err = svc.Run(ctx, args)
	}
	if err != nil {
		return r.fail(err)
	}

	return r.outcome(svc.Home(), out)
}

// renderer turns outcomes and errors into console output.
type renderer struct {
	stdout      io.Writer
	stderr      io.Writer
	verbose     bool
	colorScheme config.ColorScheme
}

func (r *renderer) outcome(home string, out execute.Outcome) error {
	switch out.Kind {
	case execute.OutcomeOptionsToDisplay:
		r.options(home, out)
		return nil
	case execute.OutcomeNoMatchInvalid:
		return r.fail(errCommandNotValid)
	case execute.OutcomePlanned:
		fmt.Fprintln(r.stdout, out.Result.Invocation.String())
		return nil
	case execute.OutcomeDispatched:
		if code := out.Result.ExitCode; !code.IsSuccess() {
			return &ExitError{Code: code}
		}
		return nil
	default:
		return r.fail(fmt.Errorf("unexpected outcome %s", out.Kind))
	}
}

func (r *renderer) options(home string, out execute.Outcome) {
	if len(out.Options) == 0 {
		if out.IsRootListing() {
			fmt.Fprintln(r.stderr, WarningStyle.Render(home+" contains no commands. Try adding commands."))
		} else {
			fmt.Fprintln(r.stderr, WarningStyle.Render(fmt.Sprintf("The '%s' directory is empty. Try adding commands to the directory.", out.LastArg())))
		}
		return
	}

	fmt.Fprintln(r.stdout, TitleStyle.Render("Available options:"))
	for _, entry := range out.Options {
		fmt.Fprintln(r.stdout, "    "+optionStyle(entry).Render(entry.Name))
	}
}

func optionStyle(e fsprobe.Entry) lipgloss.Style {
	if e.IsDirectory {
		return DirStyle
	}
	return CmdStyle
}

// fail renders err and returns the matching *ExitError. The issue catalog
// help is only shown in verbose mode.
func (r *renderer) fail(err error) error {
	exitErr := classifyError(err, r.verbose)

	var svcErr *ServiceError
	if errors.As(exitErr, &svcErr) {
		stylePath := ""
		if r.verbose {
			stylePath = glamourStyle(r.colorScheme)
		}
		renderServiceError(r.stderr, svcErr, stylePath)
	}
	return exitErr
}

// glamourStyle maps the configured color scheme to a glamour standard style.
func glamourStyle(cs config.ColorScheme) string {
	switch cs {
	case config.ColorSchemeDark, config.ColorSchemeLight:
		return string(cs)
	default:
		return "auto"
	}
}
