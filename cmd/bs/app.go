// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/bstools/bstools/internal/app/execute"
	"github.com/bstools/bstools/internal/config"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer.
	App struct {
		Config   config.Provider
		Services ServiceFactory
		stdout   io.Writer
		stderr   io.Writer
	}

	// ServiceFactory builds the dispatch service for a loaded configuration.
	ServiceFactory func(cfg *config.Config) (*execute.Service, error)

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   config.Provider
		Services ServiceFactory
		Stdout   io.Writer
		Stderr   io.Writer
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Services == nil {
		deps.Services = func(cfg *config.Config) (*execute.Service, error) {
			return execute.New(cfg)
		}
	}

	return &App{
		Config:   deps.Config,
		Services: deps.Services,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}
