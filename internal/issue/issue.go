// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	LocalesPackageMissingId Id = iota + 1
	TargetDirUnavailableId
	CopyFailedId
	ConfigLoadFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	// Issue is a catalog entry with Markdown guidance for one failure mode.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Markdown returns the message with a "See also" section for its links.
func (i *Issue) Markdown() string {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return md.String()
}

// Render renders the issue with the named glamour style
// ("auto", "dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	localesPackageMissingIssue = &Issue{
		id: LocalesPackageMissingId,
		mdMsg: `
# Locales package not found!

The translation files are shipped by the **@screensniper/locales** package,
but its directory does not exist.

## Things you can try:
- Install the project dependencies first:
~~~
$ npm install
~~~
- If the package lives elsewhere, point the installer at it with
  ` + "`source_dir`" + ` in locales.cue or ` + "`INSTALL_LOCALES_SOURCE_DIR`" + `.`,
		docLinks: []HttpLink{"https://docs.npmjs.com/cli/commands/npm-install"},
	}

	targetDirUnavailableIssue = &Issue{
		id: TargetDirUnavailableId,
		mdMsg: `
# Cannot prepare the locales directory!

The installer could not create or inspect the directory that receives the
translation files.

## Things you can try:
- Check that you can write to the project directory
- Remove any regular file that has the same name as the locales directory
- Set ` + "`target_dir`" + ` in locales.cue to a writable location`,
	}

	copyFailedIssue = &Issue{
		id: CopyFailedId,
		mdMsg: `
# Copying a translation file failed!

A locale file exists in the package but could not be copied.

## Things you can try:
- Check free disk space
- Check permissions on the locales directory and the files inside it
- Re-run the installer; files that were already copied are simply overwritten`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load locales.cue!

The installer configuration contains syntax errors or invalid values.

## Things you can try:
- Check the CUE syntax (quotes, braces, commas)
- Use only the known fields: ` + "`source_dir`, `target_dir`, `manifest`, `ui`" + `
- List manifest entries as plain file names such as "zh.json"

## Example:
~~~cue
source_dir: "node_modules/@screensniper/locales"
target_dir: "locales"
manifest: ["zh.json", "en.json", "zhHK.json"]
~~~`,
	}

	issues = map[Id]*Issue{
		localesPackageMissingIssue.Id(): localesPackageMissingIssue,
		targetDirUnavailableIssue.Id():  targetDirUnavailableIssue,
		copyFailedIssue.Id():            copyFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
