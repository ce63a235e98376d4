// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/screensniper/install-locales/internal/config"
	"github.com/screensniper/install-locales/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer; command handlers receive an App and never touch os.Stdout directly.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer

		// exitCode is set by handlers whose failure has already been rendered.
		exitCode types.ExitCode
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
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

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// newLogger returns the stderr logger used for debug traces.
func (a *App) newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// handled adapts a RunE so that an ExitError without a cause, whose failure
// the handler already rendered, sets the exit code instead of reaching fang's
// error printer.
func (a *App) handled(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Err == nil {
			a.exitCode = exitErr.Code
			return nil
		}
		return err
	}
}
