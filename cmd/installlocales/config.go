// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/screensniper/install-locales/internal/config"
	"github.com/screensniper/install-locales/internal/installer"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `install-locales config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration.

Values come from built-in defaults, then ` + config.ConfigFileName + ` in the
installation root (or --config), then ` + config.EnvPrefix + `_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: app.handled(func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app, flags)
		}),
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: app.handled(func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.Config.Load(cmd.Context(), flags.loadOptions())
			if err != nil {
				return app.failConfig(err, flags.verbose)
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		}),
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, flags *rootFlags) error {
	cfg, err := app.Config.Load(ctx, flags.loadOptions())
	if err != nil {
		return app.failConfig(err, flags.verbose)
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	layout, err := installer.ResolveLayout(root, cfg.SourceDir, cfg.TargetDir, cfg.ManifestFiles())
	if err != nil {
		return app.failConfig(err, flags.verbose)
	}

	out := app.stdout
	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if cfg.FilePath != "" {
		fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("Config file"), cfg.FilePath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("root"), SuccessStyle.Render(string(layout.Root)))
	fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("source_dir"), SuccessStyle.Render(string(layout.SourceDir)))
	fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("target_dir"), SuccessStyle.Render(string(layout.TargetDir)))
	fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("manifest"), SuccessStyle.Render(strings.Join(layout.Manifest.Strings(), ", ")))
	fmt.Fprintf(out, "%s: %s\n", KeyStyle.Render("ui.format"), SuccessStyle.Render(string(cfg.UI.Format)))
	fmt.Fprintf(out, "%s: %v\n", KeyStyle.Render("ui.verbose"), cfg.UI.Verbose)

	return nil
}
