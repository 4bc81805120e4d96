// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle renders command titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

	// SubtitleStyle renders section subtitles.
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)

	// WarningStyle renders warning prefixes.
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))

	// labelStyle renders field labels in inspect output.
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")).Width(12)

	// valueStyle renders field values in inspect output.
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
)
