// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
	"strings"
)

// windowsForbiddenChars cannot appear in a Windows file name.
const windowsForbiddenChars = `<>:"|?*`

// ErrNonPortableFileName is the sentinel error wrapped by NonPortableFileNameError.
var ErrNonPortableFileName = errors.New("file name is not portable")

// NonPortableFileNameError is returned when a file name cannot be created on
// every supported platform.
type NonPortableFileNameError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *NonPortableFileNameError) Error() string {
	return fmt.Sprintf("file name %q is not portable: %s", e.Name, e.Reason)
}

// Unwrap returns ErrNonPortableFileName for errors.Is() compatibility.
func (e *NonPortableFileNameError) Unwrap() error { return ErrNonPortableFileName }

// IsWindowsReservedName reports whether name is a Windows device name such as
// CON or LPT1. The extension is ignored: "nul.json" is reserved too.
func IsWindowsReservedName(name string) bool {
	base := strings.ToUpper(name)
	if idx := strings.IndexByte(base, '.'); idx != -1 {
		base = base[:idx]
	}
	switch base {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(base) == 4 && (strings.HasPrefix(base, "COM") || strings.HasPrefix(base, "LPT")) {
		return base[3] >= '1' && base[3] <= '9'
	}
	return false
}

// CheckPortableFileName returns an error when name could not be created on
// Windows, even if the current platform would accept it.
func CheckPortableFileName(name string) error {
	switch {
	case IsWindowsReservedName(name):
		return &NonPortableFileNameError{Name: name, Reason: "reserved device name on Windows"}
	case strings.ContainsAny(name, windowsForbiddenChars):
		return &NonPortableFileNameError{Name: name, Reason: "contains one of " + windowsForbiddenChars}
	case strings.IndexFunc(name, func(r rune) bool { return r < 0x20 }) != -1:
		return &NonPortableFileNameError{Name: name, Reason: "contains a control character"}
	case strings.HasSuffix(name, ".") || strings.HasSuffix(name, " "):
		return &NonPortableFileNameError{Name: name, Reason: "ends with a dot or space"}
	}
	return nil
}
