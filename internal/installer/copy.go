// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"fmt"
	"io"
	"os"
)

// copyFile copies src to dst byte-for-byte, truncating dst if it exists.
// A newly created dst gets the mode of src. It returns the number of bytes
// written.
func copyFile(src, dst string) (n int64, err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() { _ = srcFile.Close() }() // Read-only file; close error non-critical

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat source file: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dstFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
	}()

	n, err = io.Copy(dstFile, srcFile)
	if err != nil {
		return n, fmt.Errorf("failed to copy file contents: %w", err)
	}
	return n, nil
}
