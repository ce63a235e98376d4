// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceDirMissing is the sentinel error wrapped by SourceDirMissingError.
	ErrSourceDirMissing = errors.New("locales package directory not found")
	// ErrTargetDirUnavailable marks failures to inspect or create the target directory.
	ErrTargetDirUnavailable = errors.New("locales directory unavailable")
	// ErrCopyFailed marks failures to read or write a manifest entry.
	ErrCopyFailed = errors.New("locale copy failed")
	// ErrInvalidLayout is the sentinel error wrapped by InvalidLayoutError.
	ErrInvalidLayout = errors.New("invalid layout")
)

type (
	// SourceDirMissingError is returned when the locales package directory
	// does not exist. It is the only deliberate, user-facing failure.
	SourceDirMissingError struct {
		Path   string
		NotDir bool
	}

	// InvalidLayoutError is returned when the source and target directories
	// resolve to the same path.
	InvalidLayoutError struct {
		Path string
	}

	// stageError tags a filesystem error with the stage it happened in
	// while keeping the original message.
	stageError struct {
		stage error
		err   error
	}
)

// Error implements the error interface.
func (e *SourceDirMissingError) Error() string {
	if e.NotDir {
		return fmt.Sprintf("locales package path is not a directory: %s", e.Path)
	}
	return fmt.Sprintf("%s: %s", ErrSourceDirMissing, e.Path)
}

// Unwrap returns ErrSourceDirMissing for errors.Is() compatibility.
func (e *SourceDirMissingError) Unwrap() error { return ErrSourceDirMissing }

// Error implements the error interface.
func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("%s: source and target directory are both %s", ErrInvalidLayout, e.Path)
}

// Unwrap returns ErrInvalidLayout for errors.Is() compatibility.
func (e *InvalidLayoutError) Unwrap() error { return ErrInvalidLayout }

func (e *stageError) Error() string { return e.err.Error() }

func (e *stageError) Unwrap() []error { return []error{e.stage, e.err} }
