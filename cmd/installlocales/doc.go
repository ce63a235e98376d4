// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the install-locales command line interface.
//
// The root command runs one install pass and renders its Result; the
// config subcommand shows the effective configuration. Execute is the only
// place that exits the process.
package cmd
