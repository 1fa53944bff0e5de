// Package styles provides shared lipgloss styles for the run report.
//
// Colors are plain ANSI-256 indices; the output printer downsamples them
// to whatever the terminal supports and strips them when piped.
package styles

import "charm.land/lipgloss/v2"

// Palette
var (
	// Success is used for completed commits (green)
	Success = lipgloss.Color("82")

	// Muted is used for secondary details (gray)
	Muted = lipgloss.Color("244")
)

var (
	// Bold highlights repository and file names
	Bold = lipgloss.NewStyle().Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)
