// SPDX-License-Identifier: MPL-2.0

// Package installer copies the known locale files from the locales package
// into the project's locales directory.
//
// A run is a single linear pass: ensure the target directory exists, require
// the source directory, then copy every manifest entry that is present.
// Entries missing from the source are recorded and skipped; a missing
// source directory ends the run. The outcome is returned as a Result so
// callers decide how to present it.
package installer
