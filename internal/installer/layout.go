// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"

	"github.com/screensniper/install-locales/pkg/fspath"
	"github.com/screensniper/install-locales/pkg/types"
)

const (
	// DefaultSourceDir is where npm installs the locales package, relative
	// to the installation root.
	DefaultSourceDir types.FilesystemPath = "node_modules/@screensniper/locales"
	// DefaultTargetDir is the project-local locales directory, relative to
	// the installation root.
	DefaultTargetDir types.FilesystemPath = "locales"
)

// Layout holds the absolute paths and manifest of one install. It is
// computed once at startup by ResolveLayout and never mutated.
type Layout struct {
	Root      types.FilesystemPath
	SourceDir types.FilesystemPath
	TargetDir types.FilesystemPath
	Manifest  Manifest
}

// ResolveLayout makes root absolute and resolves the source and target
// offsets against it. Absolute offsets are used as given. The source and
// target must not resolve to the same directory.
func ResolveLayout(root, sourceDir, targetDir types.FilesystemPath, manifest Manifest) (Layout, error) {
	for _, p := range []types.FilesystemPath{root, sourceDir, targetDir} {
		if err := p.Validate(); err != nil {
			return Layout{}, err
		}
	}
	if err := manifest.Validate(); err != nil {
		return Layout{}, err
	}

	base, err := fspath.Abs(root)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve installation root %q: %w", root, err)
	}

	l := Layout{
		Root:      base,
		SourceDir: fspath.Resolve(base, sourceDir),
		TargetDir: fspath.Resolve(base, targetDir),
		Manifest:  append(Manifest(nil), manifest...),
	}
	if l.SourceDir == l.TargetDir {
		return Layout{}, &InvalidLayoutError{Path: string(l.SourceDir)}
	}
	return l, nil
}

// SourcePath returns the path of f inside the source directory.
func (l Layout) SourcePath(f LocaleFile) string {
	return string(fspath.JoinStr(l.SourceDir, string(f)))
}

// TargetPath returns the path of f inside the target directory.
func (l Layout) TargetPath(f LocaleFile) string {
	return string(fspath.JoinStr(l.TargetDir, string(f)))
}
