// SPDX-License-Identifier: MPL-2.0

package installer

import "testing"

func TestResult_Counts(t *testing.T) {
	t.Parallel()

	res := &Result{
		Expected: 3,
		Files: []FileResult{
			{Name: "zh.json", Outcome: OutcomeCopied},
			{Name: "en.json", Outcome: OutcomeMissing},
			{Name: "zhHK.json", Outcome: OutcomeCopied},
		},
	}

	if got := res.Copied(); got != 2 {
		t.Errorf("Copied() = %d, want 2", got)
	}
	if got := res.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if got := res.Summary(); got != "2/3" {
		t.Errorf("Summary() = %q, want 2/3", got)
	}
	if m := res.Missing(); len(m) != 1 || m[0] != "en.json" {
		t.Errorf("Missing() = %v, want [en.json]", m)
	}
}

// A run that stops early still reports against the full manifest.
func TestResult_TotalIsManifestLength(t *testing.T) {
	t.Parallel()

	res := &Result{Expected: 3, Status: StatusDependencyMissing}
	if got := res.Summary(); got != "0/3" {
		t.Errorf("Summary() = %q, want 0/3", got)
	}
}
