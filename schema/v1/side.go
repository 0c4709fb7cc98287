// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package v1

import (
	"iter"

	"github.com/invopop/jsonschema"
)

// Side is one of the four cube faces that carry a puzzle piece
type Side string

// The order of these sides matches the game's Side enum and must not change
const (
	SideTop    Side = "top"
	SideLeft   Side = "left"
	SideBottom Side = "bottom"
	SideRight  Side = "right"
)

// NumSides is the number of sides on a buddy (NUM_SIDES in the game)
const NumSides = 4

// AllSides returns every side in emission order
func AllSides() [NumSides]Side {
	return [NumSides]Side{SideTop, SideLeft, SideBottom, SideRight}
}

// Sides holds one value per cube side
type Sides[P any] struct {
	Top    P `json:"top"`
	Left   P `json:"left"`
	Bottom P `json:"bottom"`
	Right  P `json:"right"`
}

// JSONSchemaExtend extends the JSON schema for a set of sides
func (Sides[P]) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Description = "One piece per side, always emitted in the order top, left, bottom, right"
}

// At returns the value for a side
func (s Sides[P]) At(side Side) P {
	switch side {
	case SideLeft:
		return s.Left
	case SideBottom:
		return s.Bottom
	case SideRight:
		return s.Right
	default:
		return s.Top
	}
}

// All iterates over the sides in emission order, regardless of the order they were declared in
func (s Sides[P]) All() iter.Seq2[Side, P] {
	return func(yield func(Side, P) bool) {
		for _, side := range AllSides() {
			if !yield(side, s.At(side)) {
				return
			}
		}
	}
}
