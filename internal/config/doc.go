// SPDX-License-Identifier: MPL-2.0

// Package config handles install-locales configuration using Viper with CUE as
// the file format.
//
// Values come from, in increasing priority: built-in defaults, an optional
// locales.cue in the installation root, and INSTALL_LOCALES_* environment
// variables. The file is validated against an embedded CUE schema
// (config_schema.cue) before it is merged.
package config
