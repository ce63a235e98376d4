// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/screensniper/install-locales/internal/config"
	"github.com/screensniper/install-locales/internal/installer"
	"github.com/screensniper/install-locales/internal/issue"

	"github.com/charmbracelet/glamour"
)

// glamourStyle picks dark/light on a terminal and plain text otherwise.
const glamourStyle = "auto"

type (
	// resultRenderer presents an install Result. runErr is the error Run
	// returned alongside it, if any.
	resultRenderer interface {
		Render(res *installer.Result, runErr error) error
	}

	textRenderer struct {
		out, errOut io.Writer
		verbose     bool
	}

	jsonRenderer struct {
		out io.Writer
	}

	markdownRenderer struct {
		out     io.Writer
		verbose bool
	}

	// jsonReport is the machine-readable form of a Result.
	jsonReport struct {
		*installer.Result
		Copied  int    `json:"copied"`
		Summary string `json:"summary"`
		Error   string `json:"error,omitempty"`
	}
)

func newRenderer(ui config.UIConfig, stdout, stderr io.Writer) resultRenderer {
	switch ui.Format {
	case config.FormatJSON:
		return &jsonRenderer{out: stdout}
	case config.FormatMarkdown:
		return &markdownRenderer{out: stdout, verbose: ui.Verbose}
	default:
		return &textRenderer{out: stdout, errOut: stderr, verbose: ui.Verbose}
	}
}

// issueFor maps an install error to its catalog guidance.
func issueFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, installer.ErrSourceDirMissing):
		return issue.Get(issue.LocalesPackageMissingId)
	case errors.Is(err, installer.ErrTargetDirUnavailable):
		return issue.Get(issue.TargetDirUnavailableId)
	case errors.Is(err, installer.ErrCopyFailed):
		return issue.Get(issue.CopyFailedId)
	default:
		return nil
	}
}

func (r *textRenderer) Render(res *installer.Result, runErr error) error {
	fmt.Fprintln(r.out, TitleStyle.Render("Installing locale files..."))

	if res.TargetCreated {
		fmt.Fprintln(r.out, SuccessStyle.Render("✓ Created locales directory ")+SubtitleStyle.Render(res.TargetDir))
	}

	if res.Status == installer.StatusDependencyMissing {
		fmt.Fprintln(r.errOut, ErrorStyle.Render("✗ Error: ")+"locales package not found at "+res.SourceDir)
		r.renderIssue(issueFor(runErr))
		return nil
	}

	for _, f := range res.Files {
		switch f.Outcome {
		case installer.OutcomeCopied:
			fmt.Fprintln(r.out, SuccessStyle.Render("✓ Copied ")+KeyStyle.Render(string(f.Name)))
		case installer.OutcomeMissing:
			fmt.Fprintln(r.errOut, WarningStyle.Render("⚠ Warning: ")+string(f.Name)+" not found in the locales package, skipped")
		}
	}

	if runErr != nil {
		fmt.Fprintln(r.errOut, ErrorStyle.Render("✗ Error: ")+formatErrorForDisplay(runErr, r.verbose))
		r.renderIssue(issueFor(runErr))
		return nil
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, TitleStyle.Render(fmt.Sprintf("Done! Copied %s locale files", res.Summary())))
	fmt.Fprintln(r.out, SubtitleStyle.Render("Target: "+res.TargetDir))
	return nil
}

func (r *textRenderer) renderIssue(i *issue.Issue) {
	writeIssue(r.errOut, i)
}

// renderIssueMarkdown renders catalog guidance for the terminal.
var renderIssueMarkdown = func(i *issue.Issue) (string, error) {
	return i.Render(glamourStyle)
}

// writeIssue prints the guidance for i, falling back to the raw Markdown
// when it cannot be rendered.
func writeIssue(w io.Writer, i *issue.Issue) {
	if i == nil {
		return
	}
	rendered, err := renderIssueMarkdown(i)
	if err != nil {
		rendered = i.Markdown() + "\n"
	}
	fmt.Fprint(w, rendered)
}

func (r *jsonRenderer) Render(res *installer.Result, runErr error) error {
	report := jsonReport{
		Result:  res,
		Copied:  res.Copied(),
		Summary: res.Summary(),
	}
	if runErr != nil {
		report.Error = runErr.Error()
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (r *markdownRenderer) Render(res *installer.Result, runErr error) error {
	rendered, err := glamour.Render(markdownReport(res, runErr, r.verbose), glamourStyle)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, rendered)
	return err
}

// markdownReport builds the Markdown document rendered by markdownRenderer.
func markdownReport(res *installer.Result, runErr error, verbose bool) string {
	var md strings.Builder

	md.WriteString("# Locale install\n\n")
	fmt.Fprintf(&md, "- Source: `%s`\n", res.SourceDir)
	fmt.Fprintf(&md, "- Target: `%s`", res.TargetDir)
	if res.TargetCreated {
		md.WriteString(" (created)")
	}
	md.WriteString("\n\n")

	if len(res.Files) > 0 {
		md.WriteString("| File | Outcome |\n| --- | --- |\n")
		for _, f := range res.Files {
			fmt.Fprintf(&md, "| %s | %s |\n", f.Name, f.Outcome)
		}
		md.WriteString("\n")
	}

	if runErr != nil {
		md.WriteString("**Install failed**\n\n~~~\n")
		md.WriteString(formatErrorForDisplay(runErr, verbose))
		md.WriteString("\n~~~\n")
		if i := issueFor(runErr); i != nil {
			md.WriteString(i.Markdown())
			md.WriteString("\n")
		}
		return md.String()
	}

	fmt.Fprintf(&md, "**Copied %s locale files**\n", res.Summary())
	return md.String()
}
