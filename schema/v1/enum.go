// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package v1

import (
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

// View is the camera view of a cutscene line
type View string

// JSONSchemaExtend documents the default views
func (View) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Description = "Camera view of the line, emitted as CutsceneLine::VIEW_<VIEW>"
	schema.Examples = toAny(DefaultEnumSet().Views)
	schema.MinLength = ptr(uint64(1))
}

// Position is the side of the screen a cutscene line is spoken from
type Position string

// JSONSchemaExtend documents the default positions
func (Position) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Description = "Speaker position of the line, emitted as CutsceneLine::POSITION_<POSITION>"
	schema.Examples = toAny(DefaultEnumSet().Positions)
	schema.MinLength = ptr(uint64(1))
}

// Part is the face part shown on one side of a buddy cube
type Part string

// JSONSchemaExtend documents the default parts
func (Part) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Description = "Face part of the piece, emitted as Piece::PART_<PART>"
	schema.Examples = toAny(DefaultEnumSet().Parts)
	schema.MinLength = ptr(uint64(1))
}

// EnumSet holds the known values for every enum-like field in a puzzle document
//
// Values are compared case-insensitively
type EnumSet struct {
	Views     []string `json:"view,omitempty"`
	Positions []string `json:"position,omitempty"`
	Parts     []string `json:"part,omitempty"`
}

// JSONSchemaExtend extends the JSON schema for an enum set
func (EnumSet) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Description = "Extra enum values accepted on top of the built-in defaults"

	for _, name := range []string{"view", "position", "part"} {
		if prop, ok := schema.Properties.Get(name); ok && prop != nil {
			prop.Description = "Additional " + name + " values"
			prop.Items = &jsonschema.Schema{
				Type:    "string",
				Pattern: `^[A-Za-z][A-Za-z0-9_]*$`,
			}
		}
	}
}

// DefaultEnumSet returns the values the game understands out of the box
func DefaultEnumSet() EnumSet {
	return EnumSet{
		Views:     []string{"normal", "closeup", "left", "right"},
		Positions: []string{"left", "right"},
		Parts:     []string{"hair", "eye_left", "mouth", "eye_right"},
	}
}

// Merge returns a new set containing the values of both sets, without duplicates
func (s EnumSet) Merge(other EnumSet) EnumSet {
	return EnumSet{
		Views:     mergeValues(s.Views, other.Views),
		Positions: mergeValues(s.Positions, other.Positions),
		Parts:     mergeValues(s.Parts, other.Parts),
	}
}

func mergeValues(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	for _, v := range slices.Concat(a, b) {
		if !containsFold(merged, v) {
			merged = append(merged, strings.ToLower(v))
		}
	}
	return merged
}

func containsFold(known []string, value string) bool {
	return slices.ContainsFunc(known, func(k string) bool {
		return strings.EqualFold(k, value)
	})
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
