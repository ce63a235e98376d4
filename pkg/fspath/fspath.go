// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, so callers keep typed paths from
// configuration through to the filesystem calls.
package fspath

import (
	"fmt"
	"path/filepath"

	"github.com/screensniper/install-locales/pkg/types"
)

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments such as manifest file names.
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Abs wraps filepath.Abs for FilesystemPath. Returns an error if the
// underlying OS call fails.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// Clean wraps filepath.Clean for FilesystemPath.
func Clean(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Clean(string(p)))
}

// IsAbs wraps filepath.IsAbs for FilesystemPath.
func IsAbs(p types.FilesystemPath) bool {
	return filepath.IsAbs(string(p))
}

// Resolve returns p cleaned when it is absolute, otherwise p joined onto base.
func Resolve(base, p types.FilesystemPath) types.FilesystemPath {
	if IsAbs(p) {
		return Clean(p)
	}
	return JoinStr(base, string(p))
}
