// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/screensniper/install-locales/internal/issue"

	"github.com/charmbracelet/log"
)

const targetDirPerm = 0o755

type (
	// Installer copies the manifest of a Layout from its source directory
	// into its target directory.
	Installer struct {
		layout Layout
		logger *log.Logger
	}

	// Option configures an Installer.
	Option func(*Installer)
)

// WithLogger sets the logger used for step-by-step debug traces.
func WithLogger(l *log.Logger) Option {
	return func(in *Installer) {
		if l != nil {
			in.logger = l
		}
	}
}

// New creates an Installer for layout. Without WithLogger, traces are discarded.
func New(layout Layout, opts ...Option) *Installer {
	in := &Installer{
		layout: layout,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run performs one install pass.
//
// The returned Result is never nil and reflects the work done so far, even
// when an error is returned. A missing source directory yields
// StatusDependencyMissing and an error wrapping ErrSourceDirMissing.
// Manifest entries absent from the source are not errors.
func (in *Installer) Run(ctx context.Context) (*Result, error) {
	l := in.layout
	res := &Result{
		SourceDir: string(l.SourceDir),
		TargetDir: string(l.TargetDir),
		Status:    StatusFailed,
		Files:     make([]FileResult, 0, len(l.Manifest)),
		Expected:  len(l.Manifest),
	}

	created, err := ensureDir(string(l.TargetDir))
	if err != nil {
		return res, issue.NewErrorContext().
			WithOperation("prepare locales directory").
			WithResource(string(l.TargetDir)).
			WithSuggestion("Check that the project directory is writable").
			Wrap(&stageError{stage: ErrTargetDirUnavailable, err: err}).
			BuildError()
	}
	res.TargetCreated = created
	if created {
		in.logger.Debug("created locales directory", "path", l.TargetDir)
	}

	if err := checkSourceDir(string(l.SourceDir)); err != nil {
		var missing *SourceDirMissingError
		if errors.As(err, &missing) {
			res.Status = StatusDependencyMissing
			in.logger.Debug("locales package missing", "path", l.SourceDir)
			return res, issue.NewErrorContext().
				WithOperation("find locales package").
				WithSuggestion("Run 'npm install' first").
				Wrap(err).
				BuildError()
		}
		return res, issue.WrapWithContext(err, "inspect locales package", string(l.SourceDir))
	}

	for _, name := range l.Manifest {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("install canceled before %s: %w", name, err)
		}

		fr, err := in.installFile(name)
		if err != nil {
			return res, issue.NewErrorContext().
				WithOperation("copy locale file").
				WithResource(string(name)).
				WithSuggestion("Check free disk space and permissions on " + string(l.TargetDir)).
				Wrap(&stageError{stage: ErrCopyFailed, err: err}).
				BuildError()
		}
		res.Files = append(res.Files, fr)
	}

	res.Status = StatusComplete
	in.logger.Debug("install finished", "copied", res.Copied(), "total", res.Total())
	return res, nil
}

// installFile copies one manifest entry, or records it as missing.
func (in *Installer) installFile(name LocaleFile) (FileResult, error) {
	src := in.layout.SourcePath(name)
	fr := FileResult{Name: name, Source: src}

	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		fr.Outcome = OutcomeMissing
		in.logger.Debug("locale file missing", "file", name, "source", src)
		return fr, nil
	}
	if err != nil {
		return fr, err
	}
	if info.IsDir() {
		return fr, fmt.Errorf("%s: is a directory", src)
	}

	dst := in.layout.TargetPath(name)
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		// The target already is the source, e.g. through a symlinked locales
		// directory. Opening it for writing would truncate the source.
		fr.Outcome = OutcomeCopied
		fr.Target = dst
		fr.Bytes = info.Size()
		in.logger.Debug("locale file already in place", "file", name, "path", dst)
		return fr, nil
	}

	n, err := copyFile(src, dst)
	if err != nil {
		return fr, err
	}

	fr.Outcome = OutcomeCopied
	fr.Target = dst
	fr.Bytes = n
	in.logger.Debug("copied locale file", "file", name, "bytes", n)
	return fr, nil
}

// ensureDir creates dir with its parents when absent and reports whether
// it had to. An existing non-directory at dir is an error.
func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("%s: exists and is not a directory", dir)
		}
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, targetDirPerm); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// checkSourceDir returns a *SourceDirMissingError when dir is absent or is
// not a directory.
func checkSourceDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return &SourceDirMissingError{Path: dir}
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &SourceDirMissingError{Path: dir, NotDir: true}
	}
	return nil
}
