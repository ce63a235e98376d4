// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/screensniper/install-locales/pkg/platform"
)

const localeFileExt = ".json"

var (
	// ErrInvalidLocaleFile is the sentinel error wrapped by InvalidLocaleFileError.
	ErrInvalidLocaleFile = errors.New("invalid locale file name")
	// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
	ErrInvalidManifest = errors.New("invalid manifest")
)

type (
	// LocaleFile is the bare file name of one locale document, e.g. "zh.json".
	// It never contains a directory component.
	LocaleFile string

	// Manifest is the ordered list of locale files the installer copies.
	// It is fixed configuration; directory contents never extend it.
	Manifest []LocaleFile

	// InvalidLocaleFileError is returned when a LocaleFile is not a plain
	// JSON file name.
	InvalidLocaleFileError struct {
		Value  LocaleFile
		Reason string
	}

	// InvalidManifestError is returned when a Manifest is empty or lists
	// the same file twice.
	InvalidManifestError struct {
		Reason string
	}
)

// DefaultManifest returns the locales shipped by @screensniper/locales:
// Simplified Chinese, English and Traditional Chinese (Hong Kong).
func DefaultManifest() Manifest {
	return Manifest{"zh.json", "en.json", "zhHK.json"}
}

// String returns the file name.
func (f LocaleFile) String() string { return string(f) }

// Validate returns an error unless f is a non-empty ".json" file name
// without path separators that every platform can create.
func (f LocaleFile) Validate() error {
	name := string(f)
	switch {
	case strings.TrimSpace(name) == "":
		return &InvalidLocaleFileError{Value: f, Reason: "must be non-empty"}
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return &InvalidLocaleFileError{Value: f, Reason: "must not contain a directory"}
	case name == localeFileExt || !strings.HasSuffix(name, localeFileExt):
		return &InvalidLocaleFileError{Value: f, Reason: "must be a " + localeFileExt + " file"}
	}
	var npErr *platform.NonPortableFileNameError
	if err := platform.CheckPortableFileName(name); errors.As(err, &npErr) {
		return &InvalidLocaleFileError{Value: f, Reason: npErr.Reason}
	}
	return nil
}

// Validate checks every entry and rejects empty or duplicated manifests.
func (m Manifest) Validate() error {
	if len(m) == 0 {
		return &InvalidManifestError{Reason: "no locale files listed"}
	}

	seen := make(map[LocaleFile]int, len(m))
	var errs []error
	for i, f := range m {
		if err := f.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("manifest[%d]: %w", i, err))
			continue
		}
		if first, dup := seen[f]; dup {
			errs = append(errs, &InvalidManifestError{
				Reason: fmt.Sprintf("manifest[%d]: %q already listed at manifest[%d]", i, f, first),
			})
			continue
		}
		seen[f] = i
	}
	return errors.Join(errs...)
}

// Strings returns the manifest as plain file names.
func (m Manifest) Strings() []string {
	out := make([]string, len(m))
	for i, f := range m {
		out[i] = string(f)
	}
	return out
}

// Error implements the error interface.
func (e *InvalidLocaleFileError) Error() string {
	return fmt.Sprintf("invalid locale file name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidLocaleFile for errors.Is() compatibility.
func (e *InvalidLocaleFileError) Unwrap() error { return ErrInvalidLocaleFile }

// Error implements the error interface.
func (e *InvalidManifestError) Error() string {
	return "invalid manifest: " + e.Reason
}

// Unwrap returns ErrInvalidManifest for errors.Is() compatibility.
func (e *InvalidManifestError) Unwrap() error { return ErrInvalidManifest }
