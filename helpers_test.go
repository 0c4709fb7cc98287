// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"fmt"
	"strings"

	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

func detail(buddy string) v1.BuddyDetail {
	return v1.BuddyDetail{
		PiecesStart: v1.Sides[v1.StartPiece]{
			Top:    v1.StartPiece{Buddy: buddy, Part: "hair"},
			Left:   v1.StartPiece{Buddy: buddy, Part: "eye_left"},
			Bottom: v1.StartPiece{Buddy: buddy, Part: "mouth"},
			Right:  v1.StartPiece{Buddy: buddy, Part: "eye_right"},
		},
		PiecesEnd: v1.Sides[v1.EndPiece]{
			Top:    v1.EndPiece{Buddy: buddy, Part: "hair", Solve: true},
			Left:   v1.EndPiece{Buddy: buddy, Part: "eye_left"},
			Bottom: v1.EndPiece{Buddy: buddy, Part: "mouth", Solve: true},
			Right:  v1.EndPiece{Buddy: buddy, Part: "eye_right"},
		},
	}
}

// puzzleJSON is the single-buddy puzzle used throughout these tests, as a document
func puzzleJSON(version int, view string) string {
	pieces := func(solve bool) string {
		parts := []string{"hair", "eye_left", "mouth", "eye_right"}
		sides := []string{"top", "left", "bottom", "right"}
		entries := make([]string, 0, len(sides))
		for i, side := range sides {
			s := fmt.Sprintf(`%q: {"buddy": "orbo", "part": %q`, side, parts[i])
			if solve {
				s += fmt.Sprintf(`, "solve": %t`, i%2 == 0)
			}
			entries = append(entries, s+"}")
		}
		return "{" + strings.Join(entries, ", ") + "}"
	}

	return fmt.Sprintf(`{
  "version": %d,
  "puzzles": [
    {
      "book": 1,
      "title": "T",
      "clue": "C",
      "cutscene_start": [{"view": %q, "position": "left", "text": "Hi\nthere"}],
      "cutscene_end": [],
      "cutscene_environment": 2,
      "buddies": ["orbo"],
      "shuffles": 5,
      "orbo": {"pieces_start": %s, "pieces_end": %s}
    }
  ]
}`, version, view, pieces(false), pieces(true))
}
