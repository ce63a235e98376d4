// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/screensniper/install-locales/internal/issue"
	"github.com/screensniper/install-locales/pkg/cueutil"
	"github.com/screensniper/install-locales/pkg/types"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "install-locales"
	// ConfigFileName is the optional config file looked up in the installation root.
	ConfigFileName = "locales.cue"
	// EnvPrefix prefixes every environment override, e.g. INSTALL_LOCALES_TARGET_DIR.
	EnvPrefix = "INSTALL_LOCALES"

	schemaDefinition = "#Config"
)

//go:embed config_schema.cue
var configSchema string

// loadWithOptions performs option-driven config loading.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("root", string(defaults.Root))
	v.SetDefault("source_dir", string(defaults.SourceDir))
	v.SetDefault("target_dir", string(defaults.TargetDir))
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.format", string(defaults.UI.Format))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	root := opts.Root
	if root == "" {
		root = types.FilesystemPath(v.GetString("root"))
	}
	if root != "" {
		v.Set("root", string(root))
	}

	cfgPath, err := resolveConfigFile(opts.ConfigFilePath, root)
	if err != nil {
		return nil, err
	}
	if cfgPath != "" {
		if err := loadCUEIntoViper(v, cfgPath); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(cfgPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the locales.cue schema").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.FilePath = cfgPath

	if err := cfg.Validate(); err != nil {
		ec := issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("List manifest entries as plain file names such as \"zh.json\"").
			WithSuggestion("Check " + EnvPrefix + "_* environment variables for typos").
			Wrap(err)
		if cfgPath != "" {
			ec = ec.WithResource(cfgPath)
		}
		return nil, ec.BuildError()
	}

	return &cfg, nil
}

// resolveConfigFile returns the config file to merge: the explicit path
// when set (it must exist), otherwise locales.cue in root when present,
// otherwise "".
func resolveConfigFile(explicit, root types.FilesystemPath) (string, error) {
	if explicit != "" {
		if !fileExists(string(explicit)) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(string(explicit)).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Omit --config to use locales.cue from the project root").
				Wrap(fmt.Errorf("config file not found: %s", explicit)).
				BuildError()
		}
		return string(explicit), nil
	}

	candidate := filepath.Join(string(root), ConfigFileName)
	if fileExists(candidate) {
		return candidate, nil
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE file against the #Config schema and
// merges its contents into Viper, preserving defaults for unset fields.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, schemaDefinition, data, path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GenerateCUE renders cfg as a locales.cue document.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// install-locales configuration\n\n")
	fmt.Fprintf(&sb, "source_dir: %q\n", cfg.SourceDir)
	fmt.Fprintf(&sb, "target_dir: %q\n", cfg.TargetDir)

	sb.WriteString("\nmanifest: [\n")
	for _, name := range cfg.Manifest {
		fmt.Fprintf(&sb, "\t%q,\n", name)
	}
	sb.WriteString("]\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\tformat:  %q\n", cfg.UI.Format)
	sb.WriteString("}\n")

	return sb.String()
}
