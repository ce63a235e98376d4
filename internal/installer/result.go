// SPDX-License-Identifier: MPL-2.0

package installer

import "strconv"

const (
	// OutcomeCopied means the file was present and copied over the target.
	OutcomeCopied Outcome = "copied"
	// OutcomeMissing means the file was absent from the source and skipped.
	OutcomeMissing Outcome = "missing"

	// StatusComplete means every manifest entry was processed.
	StatusComplete Status = "complete"
	// StatusDependencyMissing means the source directory was absent and
	// nothing was copied.
	StatusDependencyMissing Status = "dependency-missing"
	// StatusFailed means a filesystem operation failed mid-run.
	StatusFailed Status = "failed"
)

type (
	// Outcome is the result of processing one manifest entry.
	Outcome string

	// Status is the overall state a run ended in.
	Status string

	// FileResult records what happened to one manifest entry.
	FileResult struct {
		Name    LocaleFile `json:"name"`
		Outcome Outcome    `json:"outcome"`
		Source  string     `json:"source"`
		Target  string     `json:"target,omitempty"`
		Bytes   int64      `json:"bytes,omitempty"`
	}

	// Result is the structured outcome of Installer.Run. Files holds one
	// entry per processed manifest entry, in manifest order.
	Result struct {
		SourceDir     string       `json:"source_dir"`
		TargetDir     string       `json:"target_dir"`
		TargetCreated bool         `json:"target_created"`
		Status        Status       `json:"status"`
		Files         []FileResult `json:"files"`
		// Expected is the manifest length.
		Expected int `json:"total"`
	}
)

// Copied returns the number of files copied.
func (r *Result) Copied() int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == OutcomeCopied {
			n++
		}
	}
	return n
}

// Total returns the manifest length.
func (r *Result) Total() int { return r.Expected }

// Missing returns the manifest entries absent from the source, in order.
func (r *Result) Missing() []LocaleFile {
	var out []LocaleFile
	for _, f := range r.Files {
		if f.Outcome == OutcomeMissing {
			out = append(out, f.Name)
		}
	}
	return out
}

// Summary returns the "copied/total" count, e.g. "2/3".
func (r *Result) Summary() string {
	return strconv.Itoa(r.Copied()) + "/" + strconv.Itoa(r.Total())
}
