// SPDX-License-Identifier: MPL-2.0

// Package types defines value types shared by the installer, configuration
// and CLI layers. Each type carries its own validation.
//
// This package is a leaf dependency: it imports only the standard library.
package types
