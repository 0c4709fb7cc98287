// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"fmt"
	"strings"

	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

// Explain returns a markdown summary of a puzzle document, one table row per puzzle
func Explain(doc v1.Document) string {
	var sb strings.Builder

	sb.WriteString("# Puzzles\n\n")

	if len(doc.Puzzles) == 0 {
		sb.WriteString("No puzzles.\n")
		return sb.String()
	}

	sb.WriteString("| # | Book | Title | Buddies | Shuffles | Cutscene lines (start / end) |\n")
	sb.WriteString("|---|------|-------|---------|----------|------------------------------|\n")

	for i, p := range doc.Puzzles {
		fmt.Fprintf(&sb, "| %d | %d | %s | %s | %d | %d / %d |\n",
			i,
			p.Book,
			escapeCell(p.Title),
			escapeCell(strings.Join(p.BuddyOrder, ", ")),
			p.Shuffles,
			len(p.CutsceneStart),
			len(p.CutsceneEnd),
		)
	}

	for i, p := range doc.Puzzles {
		if p.Clue == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n## %d. %s\n\n> %s\n", i, p.Title, p.Clue)
	}

	return sb.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
