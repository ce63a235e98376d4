// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/screensniper/install-locales/internal/config"
	"github.com/screensniper/install-locales/internal/issue"
	"github.com/screensniper/install-locales/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	root       string
	configPath string
	format     string
	verbose    bool
}

// NewRootCommand builds the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Copy the bundled translation files into the project",
		Long: TitleStyle.Render(config.AppName) + SubtitleStyle.Render(" - copy the bundled translation files into the project") + `

Copies zh.json, en.json and zhHK.json from node_modules/@screensniper/locales
into ./locales, creating the directory when needed. Files missing from the
package are skipped with a warning; a missing package is an error.

Meant to run as a post-install hook:

` + SubtitleStyle.Render(`  "scripts": { "postinstall": "install-locales" }`) + `

Settings can be placed in locales.cue at the project root or passed as
` + config.EnvPrefix + `_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: app.handled(func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), app, flags, cmd.Flags().Changed("format"), cmd.Flags().Changed("verbose"))
		}),
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.root, "root", "", "installation root (default is the working directory)")
	pf.StringVar(&flags.configPath, "config", "", "config file (default is <root>/"+config.ConfigFileName+")")
	pf.StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json or markdown")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")

	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, deps Dependencies, args []string) types.ExitCode {
	app := NewApp(deps)
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return exitCodeFor(err)
	}
	if app.exitCode.Validate() != nil {
		return types.ExitFailure
	}
	return app.exitCode
}

// exitCodeFor maps an error returned by the command tree to a process exit
// code. Codes outside the portable 0-255 range collapse to ExitFailure.
func exitCodeFor(err error) types.ExitCode {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code.Validate() == nil && !exitErr.Code.IsSuccess() {
		return exitErr.Code
	}
	return types.ExitFailure
}

// Execute runs the CLI against the process arguments. This is called by
// main.main(); it exits the process only on failure.
func Execute() {
	if code := Run(context.Background(), Dependencies{}, os.Args[1:]); !code.IsSuccess() {
		os.Exit(int(code))
	}
}

// loadOptions turns the persistent flags into config load options.
func (f *rootFlags) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: types.FilesystemPath(f.configPath),
		Root:           types.FilesystemPath(f.root),
	}
}

// effectiveUI applies flags on top of the configured UI settings. Flags only
// win when they were set explicitly.
func (f *rootFlags) effectiveUI(cfg *config.Config, formatChanged, verboseChanged bool) (config.UIConfig, error) {
	ui := cfg.UI
	if formatChanged {
		ui.Format = config.OutputFormat(f.format)
	}
	if verboseChanged {
		ui.Verbose = f.verbose
	}
	if err := ui.Format.Validate(); err != nil {
		return ui, err
	}
	return ui, nil
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors list their suggestions; verbose mode adds the full chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
