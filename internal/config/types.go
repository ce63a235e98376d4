// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/screensniper/install-locales/internal/installer"
	"github.com/screensniper/install-locales/pkg/types"
)

const (
	// FormatText renders styled, human-readable lines.
	FormatText OutputFormat = "text"
	// FormatJSON renders the install result as JSON.
	FormatJSON OutputFormat = "json"
	// FormatMarkdown renders a Markdown report through glamour.
	FormatMarkdown OutputFormat = "markdown"
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// OutputFormat selects how the install result is presented.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	// It wraps ErrInvalidOutputFormat for errors.Is() compatibility.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// InvalidConfigError collects every field error found by Config.Validate.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the installer configuration.
	Config struct {
		// Root is the installation root. Empty means the working directory.
		Root types.FilesystemPath `json:"root" mapstructure:"root"`
		// SourceDir is the locales package directory.
		SourceDir types.FilesystemPath `json:"source_dir" mapstructure:"source_dir"`
		// TargetDir is the project-local locales directory.
		TargetDir types.FilesystemPath `json:"target_dir" mapstructure:"target_dir"`
		// Manifest lists the locale files to copy, in order.
		Manifest []string `json:"manifest" mapstructure:"manifest"`
		// UI configures presentation.
		UI UIConfig `json:"ui" mapstructure:"ui"`

		// FilePath is the config file that was merged, or "" for none.
		FilePath string `json:"-" mapstructure:"-"`
	}

	// UIConfig configures presentation.
	UIConfig struct {
		// Verbose enables debug logging and error chains
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Format selects the output format
		Format OutputFormat `json:"format" mapstructure:"format"`
	}
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Root:      "",
		SourceDir: installer.DefaultSourceDir,
		TargetDir: installer.DefaultTargetDir,
		Manifest:  installer.DefaultManifest().Strings(),
		UI: UIConfig{
			Verbose: false,
			Format:  FormatText,
		},
	}
}

// String returns the format name.
func (f OutputFormat) String() string { return string(f) }

// Validate returns an error unless f is text, json or markdown.
func (f OutputFormat) Validate() error {
	switch f {
	case FormatText, FormatJSON, FormatMarkdown:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, markdown)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// ManifestFiles returns the manifest as installer locale files.
func (c *Config) ManifestFiles() installer.Manifest {
	m := make(installer.Manifest, len(c.Manifest))
	for i, name := range c.Manifest {
		m[i] = installer.LocaleFile(name)
	}
	return m
}

// Validate checks the paths, the manifest and the output format.
// The root may be empty.
func (c *Config) Validate() error {
	var errs []error
	if c.Root != "" {
		if err := c.Root.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("root: %w", err))
		}
	}
	if err := c.SourceDir.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("source_dir: %w", err))
	}
	if err := c.TargetDir.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("target_dir: %w", err))
	}
	if err := c.ManifestFiles().Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.UI.Format.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui.format: %w", err))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidConfig, errors.Join(e.FieldErrors...))
}

// Unwrap returns the sentinel and every field error for errors.Is/As.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
