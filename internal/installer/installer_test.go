// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/screensniper/install-locales/internal/issue"
	"github.com/screensniper/install-locales/internal/testutil"
	"github.com/screensniper/install-locales/pkg/platform"
	"github.com/screensniper/install-locales/pkg/types"

	"github.com/charmbracelet/log"
)

func newTestInstaller(t *testing.T, p testutil.Project, opts ...Option) *Installer {
	t.Helper()
	layout, err := ResolveLayout(types.FilesystemPath(p.Root), DefaultSourceDir, DefaultTargetDir, DefaultManifest())
	if err != nil {
		t.Fatalf("ResolveLayout() error: %v", err)
	}
	return New(layout, opts...)
}

func outcomes(res *Result) map[LocaleFile]Outcome {
	out := make(map[LocaleFile]Outcome, len(res.Files))
	for _, f := range res.Files {
		out[f.Name] = f.Outcome
	}
	return out
}

func TestRun_FullSource(t *testing.T) {
	t.Parallel()

	source := map[string]string{
		"zh.json":   `{"hello":"你好"}`,
		"en.json":   `{"hello":"Hello"}`,
		"zhHK.json": `{"hello":"你好 (HK)"}`,
	}
	p := testutil.NewProject(t, source)

	res, err := newTestInstaller(t, p).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if res.Status != StatusComplete {
		t.Errorf("Status = %q, want %q", res.Status, StatusComplete)
	}
	if got := res.Summary(); got != "3/3" {
		t.Errorf("Summary() = %q, want 3/3", got)
	}
	if !res.TargetCreated {
		t.Error("TargetCreated = false, want true")
	}
	if got := testutil.ReadFiles(t, p.TargetDir); !maps.Equal(got, source) {
		t.Errorf("target files = %v, want %v", got, source)
	}
	for i, f := range res.Files {
		if f.Name != DefaultManifest()[i] {
			t.Errorf("Files[%d].Name = %q, want manifest order %q", i, f.Name, DefaultManifest()[i])
		}
		if f.Bytes != int64(len(source[string(f.Name)])) {
			t.Errorf("Files[%d].Bytes = %d, want %d", i, f.Bytes, len(source[string(f.Name)]))
		}
	}
}

func TestRun_PartialSource(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"en.json": `{"b":2}`})

	res, err := newTestInstaller(t, p).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if got := res.Summary(); got != "1/3" {
		t.Errorf("Summary() = %q, want 1/3", got)
	}
	if res.Status != StatusComplete {
		t.Errorf("Status = %q, want complete", res.Status)
	}
	want := map[LocaleFile]Outcome{"zh.json": OutcomeMissing, "en.json": OutcomeCopied, "zhHK.json": OutcomeMissing}
	if got := outcomes(res); !maps.Equal(got, want) {
		t.Errorf("outcomes = %v, want %v", got, want)
	}
	if missing := res.Missing(); len(missing) != 2 || missing[0] != "zh.json" || missing[1] != "zhHK.json" {
		t.Errorf("Missing() = %v, want [zh.json zhHK.json]", missing)
	}
	if got := testutil.ReadFiles(t, p.TargetDir); len(got) != 1 || got["en.json"] != `{"b":2}` {
		t.Errorf("target files = %v, want only en.json", got)
	}
}

func TestRun_EmptySourceDirectory(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{})

	res, err := newTestInstaller(t, p).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := res.Summary(); got != "0/3" {
		t.Errorf("Summary() = %q, want 0/3", got)
	}
	if res.Status != StatusComplete {
		t.Errorf("Status = %q, want complete", res.Status)
	}
}

func TestRun_MissingDependency(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, nil)

	res, err := newTestInstaller(t, p).Run(context.Background())
	if err == nil {
		t.Fatal("Run() error = nil, want missing dependency")
	}
	if !errors.Is(err, ErrSourceDirMissing) {
		t.Errorf("error should wrap ErrSourceDirMissing, got: %v", err)
	}
	var missing *SourceDirMissingError
	if !errors.As(err, &missing) || missing.Path != p.SourceDir {
		t.Errorf("error should carry the source path %q, got: %v", p.SourceDir, err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || !ae.HasSuggestions() {
		t.Errorf("error should be actionable with suggestions, got: %T", err)
	}

	if res.Status != StatusDependencyMissing {
		t.Errorf("Status = %q, want %q", res.Status, StatusDependencyMissing)
	}
	if len(res.Files) != 0 || res.Copied() != 0 {
		t.Errorf("no files should be processed, got %v", res.Files)
	}
	if !res.TargetCreated {
		t.Error("target directory should still be created")
	}
	info, statErr := os.Stat(p.TargetDir)
	if statErr != nil || !info.IsDir() {
		t.Errorf("target directory should exist, stat err = %v", statErr)
	}
}

func TestRun_SourceIsAFile(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, nil)
	testutil.WriteFiles(t, filepath.Dir(p.SourceDir), map[string]string{"locales": "not a dir"})

	res, err := newTestInstaller(t, p).Run(context.Background())
	var missing *SourceDirMissingError
	if !errors.As(err, &missing) || !missing.NotDir {
		t.Fatalf("want SourceDirMissingError with NotDir, got: %v", err)
	}
	if res.Status != StatusDependencyMissing {
		t.Errorf("Status = %q, want dependency-missing", res.Status)
	}
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"zh.json": `{"a":1}`, "zhHK.json": `{"c":3}`})
	in := newTestInstaller(t, p)

	first, err := in.Run(context.Background())
	if err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	afterFirst := testutil.ReadFiles(t, p.TargetDir)

	second, err := in.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error: %v", err)
	}
	afterSecond := testutil.ReadFiles(t, p.TargetDir)

	if !maps.Equal(afterFirst, afterSecond) {
		t.Errorf("target changed between runs: %v vs %v", afterFirst, afterSecond)
	}
	if first.Summary() != second.Summary() {
		t.Errorf("summaries differ: %s vs %s", first.Summary(), second.Summary())
	}
	if !first.TargetCreated || second.TargetCreated {
		t.Errorf("TargetCreated = %v then %v, want true then false", first.TargetCreated, second.TargetCreated)
	}
}

func TestRun_OverwritesStaleTarget(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"zh.json": `{"fresh":true}`})
	testutil.WriteFiles(t, p.TargetDir, map[string]string{
		"zh.json":    `{"stale":true,"with":"a much longer body than the fresh copy"}`,
		"extra.json": `{"kept":true}`,
	})

	res, err := newTestInstaller(t, p).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.TargetCreated {
		t.Error("TargetCreated = true for an existing directory")
	}

	got := testutil.ReadFiles(t, p.TargetDir)
	if got["zh.json"] != `{"fresh":true}` {
		t.Errorf("zh.json = %q, want the fresh source content", got["zh.json"])
	}
	if got["extra.json"] != `{"kept":true}` {
		t.Error("files outside the manifest must be left alone")
	}
}

func TestRun_IgnoresFilesOutsideManifest(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"en.json": "{}", "fr.json": "{}", "README.md": "docs"})

	if _, err := newTestInstaller(t, p).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	got := testutil.ReadFiles(t, p.TargetDir)
	if len(got) != 1 {
		t.Errorf("only manifest files should be copied, got %v", got)
	}
}

// The scenario: zh and en present, zhHK absent, no target directory yet.
func TestRun_TwoOfThree(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"zh.json": `{"a":1}`, "en.json": `{"b":2}`})

	res, err := newTestInstaller(t, p).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.TargetCreated {
		t.Error("target directory should be created")
	}
	if got := res.Summary(); got != "2/3" {
		t.Errorf("Summary() = %q, want 2/3", got)
	}
	want := map[string]string{"zh.json": `{"a":1}`, "en.json": `{"b":2}`}
	if got := testutil.ReadFiles(t, p.TargetDir); !maps.Equal(got, want) {
		t.Errorf("target files = %v, want %v", got, want)
	}
	if m := res.Missing(); len(m) != 1 || m[0] != "zhHK.json" {
		t.Errorf("Missing() = %v, want [zhHK.json]", m)
	}
}

func TestRun_TargetIsAFile(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"en.json": "{}"})
	testutil.WriteFiles(t, p.Root, map[string]string{"locales": "occupied"})

	res, err := newTestInstaller(t, p).Run(context.Background())
	if !errors.Is(err, ErrTargetDirUnavailable) {
		t.Fatalf("want ErrTargetDirUnavailable, got: %v", err)
	}
	if res.Status != StatusFailed {
		t.Errorf("Status = %q, want failed", res.Status)
	}
}

func TestRun_ManifestEntryIsDirectory(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"zh.json": "{}"})
	testutil.MustMkdirAll(t, filepath.Join(p.SourceDir, "en.json"), 0o755)

	res, err := newTestInstaller(t, p).Run(context.Background())
	if !errors.Is(err, ErrCopyFailed) {
		t.Fatalf("want ErrCopyFailed, got: %v", err)
	}
	if !strings.Contains(err.Error(), "en.json") {
		t.Errorf("error should name the file, got: %v", err)
	}
	if res.Status != StatusFailed {
		t.Errorf("Status = %q, want failed", res.Status)
	}
	if len(res.Files) != 1 || res.Files[0].Outcome != OutcomeCopied {
		t.Errorf("files before the failure should be recorded, got %v", res.Files)
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"zh.json": "{}"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newTestInstaller(t, p).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got: %v", err)
	}
	if res.Copied() != 0 {
		t.Errorf("no file should be copied after cancellation, got %d", res.Copied())
	}
}

func TestRun_LogsWithInjectedLogger(t *testing.T) {
	t.Parallel()

	p := testutil.NewProject(t, map[string]string{"zh.json": "{}"})
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	if _, err := newTestInstaller(t, p, WithLogger(logger)).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	for _, want := range []string{"created locales directory", "copied locale file", "locale file missing", "install finished"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestNew_NilLoggerKeepsDefault(t *testing.T) {
	t.Parallel()

	in := New(Layout{}, WithLogger(nil))
	if in.logger == nil {
		t.Fatal("logger should never be nil")
	}
}

func TestRun_TargetSymlinkedToSource(t *testing.T) {
	t.Parallel()

	source := map[string]string{"zh.json": `{"a":1}`, "en.json": `{"b":2}`}
	p := testutil.NewProject(t, source)
	if err := os.Symlink(p.SourceDir, p.TargetDir); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	res, err := newTestInstaller(t, p).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := res.Summary(); got != "2/3" {
		t.Errorf("Summary() = %q, want 2/3", got)
	}
	for _, f := range res.Files {
		if f.Outcome == OutcomeCopied && f.Bytes != int64(len(source[string(f.Name)])) {
			t.Errorf("%s Bytes = %d, want %d", f.Name, f.Bytes, len(source[string(f.Name)]))
		}
	}
	if got := testutil.ReadFiles(t, p.SourceDir); !maps.Equal(got, source) {
		t.Errorf("source files = %v, want them untouched: %v", got, source)
	}
}

func TestRun_KeepsSourceMode(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == platform.Windows {
		t.Skip("file modes are not preserved on Windows")
	}

	p := testutil.NewProject(t, map[string]string{"en.json": "{}"})
	if err := os.Chmod(filepath.Join(p.SourceDir, "en.json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := newTestInstaller(t, p).Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	info, err := os.Stat(filepath.Join(p.TargetDir, "en.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("target mode = %v, want 0600", got)
	}
}

func TestCopyFile_WrapsErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := copyFile(filepath.Join(dir, "absent.json"), filepath.Join(dir, "out.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to open source file") {
		t.Errorf("copyFile() missing source error = %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got: %v", err)
	}

	testutil.WriteFiles(t, dir, map[string]string{"en.json": "{}"})
	_, err = copyFile(filepath.Join(dir, "en.json"), filepath.Join(dir, "no-such-dir", "en.json"))
	if err == nil || !strings.Contains(err.Error(), "failed to create destination file") {
		t.Errorf("copyFile() unwritable destination error = %v", err)
	}
}
