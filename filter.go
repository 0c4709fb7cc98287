// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/expr-lang/expr"

	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

// Filter selects which puzzles are emitted
//
// It is an expr boolean expression evaluated once per puzzle, with the puzzle's
// index, book, title, clue, environment, shuffles and buddies in scope, plus hasBuddy(name).
type Filter string

// String implements fmt.Stringer
func (f Filter) String() string {
	return string(f)
}

func filterEnv(p v1.Puzzle, index int) map[string]any {
	buddies := p.BuddyOrder
	if buddies == nil {
		buddies = []string{}
	}
	return map[string]any{
		"index":       index,
		"book":        p.Book,
		"title":       p.Title,
		"clue":        p.Clue,
		"environment": p.CutsceneEnvironment,
		"shuffles":    p.Shuffles,
		"buddies":     buddies,
	}
}

// Apply returns doc with only the puzzles f matches
//
// An empty filter keeps every puzzle, kept puzzles stay in order and are renumbered on render.
func (f Filter) Apply(ctx context.Context, doc v1.Document) (v1.Document, error) {
	if f == "" {
		return doc, nil
	}

	logger := log.FromContext(ctx)

	var current v1.Puzzle
	hasBuddy := expr.Function(
		"hasBuddy",
		func(params ...any) (any, error) {
			name, _ := params[0].(string)
			return slices.ContainsFunc(current.BuddyOrder, func(b string) bool {
				return strings.EqualFold(b, name)
			}), nil
		},
		new(func(string) bool),
	)

	program, err := expr.Compile(f.String(), expr.Env(filterEnv(v1.Puzzle{}, 0)), expr.AsBool(), hasBuddy)
	if err != nil {
		return v1.Document{}, fmt.Errorf("invalid filter %q: %w", f, err)
	}

	kept := make([]v1.Puzzle, 0, len(doc.Puzzles))
	for i, p := range doc.Puzzles {
		current = p

		out, err := expr.Run(program, filterEnv(p, i))
		if err != nil {
			return v1.Document{}, fmt.Errorf("filter %q failed on puzzle %d: %w", f, i, err)
		}

		if out.(bool) { // safe due to expr.AsBool()
			kept = append(kept, p)
		}
	}

	logger.Debug("filtered puzzles", "filter", f, "kept", len(kept), "total", len(doc.Puzzles))

	doc.Puzzles = kept
	return doc, nil
}
