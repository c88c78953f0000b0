// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple - used for titles and headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and empty listings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for directories and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for the option listing header.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ErrorStyle is for fatal error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// WarningStyle is for recoverable conditions such as empty directories.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// DirStyle marks directory entries in option listings.
	DirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	// CmdStyle marks command entries in option listings.
	CmdStyle = lipgloss.NewStyle()
)
