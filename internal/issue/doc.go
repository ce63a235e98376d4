// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and Markdown guidance for the
// failures install-locales reports to users.
//
// ActionableError carries the failed operation, the path involved and
// suggestions. Issue is a catalog entry rendered with glamour when a
// failure needs more than a one-line hint.
package issue
