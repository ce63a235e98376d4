// SPDX-License-Identifier: MPL-2.0

// Command install-locales copies the bundled translation files into the project.
package main

import cmd "github.com/screensniper/install-locales/cmd/installlocales"

func main() {
	cmd.Execute()
}
