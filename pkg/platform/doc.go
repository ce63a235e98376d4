// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// Locale files are installed into projects that may be checked out on any
// OS, so manifest names are held to the rules of the strictest filesystem.
package platform
