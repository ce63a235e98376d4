// SPDX-License-Identifier: MPL-2.0

package platform

// Windows is the runtime.GOOS value for Windows.
const Windows = "windows"
