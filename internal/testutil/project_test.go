// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"testing"
)

func TestNewProject(t *testing.T) {
	t.Parallel()

	p := NewProject(t, map[string]string{"en.json": `{"b":2}`})

	got := ReadFiles(t, p.SourceDir)
	if len(got) != 1 || got["en.json"] != `{"b":2}` {
		t.Errorf("ReadFiles(source) = %v", got)
	}
	if _, err := os.Stat(p.TargetDir); !os.IsNotExist(err) {
		t.Errorf("target dir should not exist yet, stat err = %v", err)
	}
}

func TestNewProject_Uninstalled(t *testing.T) {
	t.Parallel()

	p := NewProject(t, nil)
	if ReadFiles(t, p.SourceDir) != nil {
		t.Error("source dir should not exist for a nil source")
	}
}
