// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// DefaultStyles returns the default log styles.
func DefaultStyles() *log.Styles {
	styles := log.DefaultStyles()

	// https://github.com/charmbracelet/vhs/blob/main/themes.json
	levels := map[log.Level]lipgloss.AdaptiveColor{
		log.DebugLevel: {Light: "#2e7de9", Dark: "#7aa2f7"}, // tokyonight blue
		log.InfoLevel:  {Light: "#007197", Dark: "#7dcfff"}, // tokyonight cyan
		log.WarnLevel:  {Light: "#8c6c3e", Dark: "#e0af68"}, // tokyonight amber
		log.ErrorLevel: {Light: "#f52a65", Dark: "#f7768e"}, // tokyonight red
		log.FatalLevel: {Light: "#9854f1", Dark: "#bb9af7"}, // tokyonight magenta
	}
	for level, color := range levels {
		styles.Levels[level] = styles.Levels[level].Foreground(color)
	}

	// highlight field paths in validation errors
	styles.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#587539", Dark: "#9ece6a"})
	styles.Values["path"] = lipgloss.NewStyle().Bold(true)

	return styles
}
