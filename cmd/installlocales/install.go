// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/screensniper/install-locales/internal/installer"
	"github.com/screensniper/install-locales/internal/issue"
	"github.com/screensniper/install-locales/pkg/types"
)

// runInstall loads configuration, performs one install pass and renders the
// result. Every failure is rendered here and reported as a bare ExitError.
func runInstall(ctx context.Context, app *App, flags *rootFlags, formatChanged, verboseChanged bool) error {
	cfg, err := app.Config.Load(ctx, flags.loadOptions())
	if err != nil {
		return app.failConfig(err, flags.verbose)
	}

	ui, err := flags.effectiveUI(cfg, formatChanged, verboseChanged)
	if err != nil {
		return app.failConfig(err, flags.verbose)
	}

	logger := app.newLogger(ui.Verbose)
	if cfg.FilePath != "" {
		logger.Debug("loaded configuration", "file", cfg.FilePath)
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	layout, err := installer.ResolveLayout(root, cfg.SourceDir, cfg.TargetDir, cfg.ManifestFiles())
	if err != nil {
		return app.failConfig(err, ui.Verbose)
	}
	logger.Debug("resolved layout", "source", layout.SourceDir, "target", layout.TargetDir, "files", len(layout.Manifest))

	res, runErr := installer.New(layout, installer.WithLogger(logger)).Run(ctx)

	if err := newRenderer(ui, app.stdout, app.stderr).Render(res, runErr); err != nil {
		return fmt.Errorf("render install result: %w", err)
	}

	if runErr != nil {
		return &ExitError{Code: types.ExitFailure}
	}
	return nil
}

// failConfig renders a configuration failure with its guidance.
func (a *App) failConfig(err error, verbose bool) error {
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	writeIssue(a.stderr, issue.Get(issue.ConfigLoadFailedId))
	return &ExitError{Code: types.ExitFailure}
}
