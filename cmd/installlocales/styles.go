// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output, tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple - used for titles and the summary line.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for paths and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for copied files and created directories.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for fatal errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for skipped manifest entries.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for config keys and file names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for headers and the final summary.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for paths and secondary text.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// KeyStyle is for configuration keys and file names.
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
