// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bstools/bstools/internal/app/execute"
	"github.com/bstools/bstools/internal/config"
	"github.com/bstools/bstools/internal/discovery"
	"github.com/bstools/bstools/internal/issue"
	"github.com/bstools/bstools/internal/runtime"
)

// errCommandNotValid is reported when the arguments match neither a command
// nor a directory in any runner.
var errCommandNotValid = errors.New("command not valid")

// ServiceError is an error that carries optional rendering information for
// the CLI layer. When the CLI layer receives a ServiceError, it renders the
// styled error message (if present) before formatting the underlying error.
// Always create via newServiceError to enforce the Err-must-be-non-nil invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
	// StyledMessage is the optional pre-rendered styled error text.
	StyledMessage string
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id, styledMessage string) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{
		Err:           err,
		IssueID:       issueID,
		StyledMessage: styledMessage,
	}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// renderServiceError prints the styled message and, when stylePath is not
// empty, the issue catalog help rendered with that glamour style.
func renderServiceError(stderr io.Writer, svcErr *ServiceError, stylePath string) {
	if svcErr == nil {
		return
	}

	if svcErr.StyledMessage != "" {
		fmt.Fprint(stderr, svcErr.StyledMessage)
	}

	if svcErr.IssueID == 0 || stylePath == "" {
		return
	}

	if catalogEntry := issue.Get(svcErr.IssueID); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(stylePath)
		if renderErr != nil {
			slog.Warn("failed to render issue catalog entry", "issueID", svcErr.IssueID, "error", renderErr)
		} else {
			fmt.Fprint(stderr, rendered)
		}
	}
}

// classifyError maps a fatal error to its exit code, issue catalog entry and
// the console message. Messages keep the wording users of bs already know.
func classifyError(err error, verbose bool) *ExitError {
	var (
		code   = ExitMisconfigured
		id     issue.Id
		styled string
	)

	var (
		missingEnv *runtime.MissingEnvError
		multiLine  *runtime.MultiLineAliasError
		missingArg *runtime.MissingAliasArgumentError
		ambiguous  *discovery.AmbiguousCommandError
		actionable *issue.ActionableError
	)

	switch {
	case errors.Is(err, config.ErrHomeNotSet):
		id = issue.HomeNotSetId
		styled = lines(
			fmt.Sprintf("Mandatory environment variable '%s' does not exist. Set the environment variable and try again.", config.EnvHome),
			fmt.Sprintf("'%s' must contain a directory path. Within the directory, commands and data will be stored.", config.EnvHome),
			"If this is a new installation, an empty directory may be used.",
		)
	case errors.Is(err, errCommandNotValid):
		code = ExitInvalidCommand
		id = issue.CommandNotValidId
		styled = lines("The command you entered is not valid. Enter a valid command and try again.")
	case errors.As(err, &ambiguous):
		code = ExitAmbiguous
		id = issue.AmbiguousCommandId
		styled = lines(
			fmt.Sprintf("More than one command exists for '%s'. Commands must be unique across runners:", strings.Join(ambiguous.Args, " ")),
		)
		for _, path := range ambiguous.Paths {
			styled += lines("    " + path)
		}
	case errors.As(err, &missingEnv):
		id = issue.InterpreterNotSetId
		styled = lines(
			fmt.Sprintf("Mandatory environment variable '%s' does not exist. Set the environment variable and try again.", missingEnv.Name),
			fmt.Sprintf("'%s' must contain the path to the %s.", missingEnv.Name, missingEnv.Purpose),
		)
	case errors.As(err, &multiLine):
		id = issue.MultiLineAliasId
		styled = lines(fmt.Sprintf("The command file %s contains more than one line. Only single line commands are supported.", multiLine.Path))
	case errors.As(err, &missingArg):
		id = issue.MissingAliasArgumentId
		styled = lines(
			"The following command expects one or more arguments in order to replace the %s token(s):",
			missingArg.Alias,
		)
	case errors.Is(err, runtime.ErrSpawnFailed):
		code = runtime.ExitSpawnFailed
		id = issue.SpawnFailedId
		styled = lines(ErrorStyle.Render("Error:") + " " + err.Error())
	case errors.As(err, &actionable):
		id = issue.ConfigLoadFailedId
		if actionable.Operation == execute.OperationPrepareHome {
			id = issue.DirectorySetupFailedId
		}
		styled = lines(ErrorStyle.Render("Error:") + " " + actionable.Format(verbose))
	default:
		styled = lines(ErrorStyle.Render("Error:") + " " + err.Error())
	}

	return &ExitError{Code: code, Err: newServiceError(err, id, styled)}
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}
