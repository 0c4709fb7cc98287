// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package v1

import (
	"fmt"
	"strings"
)

// detailJSON returns a buddy detail where every piece comes from buddy
//
// pieces_end is declared bottom-up on purpose
func detailJSON(buddy string) string {
	return fmt.Sprintf(`{
  "pieces_start": {
    "top": {"buddy": %[1]q, "part": "hair"},
    "left": {"buddy": %[1]q, "part": "eye_left"},
    "bottom": {"buddy": %[1]q, "part": "mouth"},
    "right": {"buddy": %[1]q, "part": "eye_right"}
  },
  "pieces_end": {
    "right": {"buddy": %[1]q, "part": "eye_right", "solve": false},
    "bottom": {"buddy": %[1]q, "part": "mouth", "solve": true},
    "left": {"buddy": %[1]q, "part": "eye_left", "solve": false},
    "top": {"buddy": %[1]q, "part": "hair", "solve": true}
  }
}`, buddy)
}

// puzzleJSON returns a puzzle with buddies in the given layout ("map", "list" or "detail")
func puzzleJSON(layout string, buddies ...string) string {
	var fields []string
	switch layout {
	case "map":
		entries := make([]string, 0, len(buddies))
		for _, b := range buddies {
			entries = append(entries, fmt.Sprintf("%q: %s", b, detailJSON(b)))
		}
		fields = append(fields, fmt.Sprintf(`"buddies": {%s}`, strings.Join(entries, ", ")))
	case "list", "detail":
		names := make([]string, 0, len(buddies))
		entries := make([]string, 0, len(buddies))
		for _, b := range buddies {
			names = append(names, fmt.Sprintf("%q", b))
			entries = append(entries, fmt.Sprintf("%q: %s", b, detailJSON(b)))
		}
		fields = append(fields, fmt.Sprintf(`"buddies": [%s]`, strings.Join(names, ", ")))
		if layout == "detail" {
			fields = append(fields, fmt.Sprintf(`"buddies_detail": {%s}`, strings.Join(entries, ", ")))
		} else {
			fields = append(fields, entries...)
		}
	}

	return fmt.Sprintf(`{
  "book": 1,
  "title": "First Steps",
  "clue": "Match the faces",
  "cutscene_start": [{"view": "Closeup", "position": "left", "text": "Hello\nthere"}],
  "cutscene_end": [],
  "cutscene_environment": 2,
  "shuffles": 5,
  %s
}`, strings.Join(fields, ",\n  "))
}

func documentJSON(version string, puzzles ...string) string {
	return fmt.Sprintf(`{"version": %s, "puzzles": [%s]}`, version, strings.Join(puzzles, ", "))
}
