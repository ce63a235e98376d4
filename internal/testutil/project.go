// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
)

// Project is a temporary installation root laid out the way npm leaves it.
type Project struct {
	Root      string
	SourceDir string
	TargetDir string
}

// NewProject creates a temporary root. When source is non-nil the locales
// package directory is created and populated with it; a nil source leaves
// the package uninstalled. The target directory is not created.
func NewProject(t testing.TB, source map[string]string) Project {
	t.Helper()
	root := t.TempDir()
	p := Project{
		Root:      root,
		SourceDir: filepath.Join(root, "node_modules", "@screensniper", "locales"),
		TargetDir: filepath.Join(root, "locales"),
	}
	if source != nil {
		WriteFiles(t, p.SourceDir, source)
	}
	return p
}
