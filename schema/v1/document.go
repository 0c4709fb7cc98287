// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package v1 provides the types, schema and validation for v1 CubeBuddies puzzle documents
package v1

import (
	"github.com/invopop/jsonschema"
)

// SchemaVersion is the only puzzle document version this package understands
const SchemaVersion = 1

// Document is a collection of puzzles in the CubeBuddies format
type Document struct {
	// Version is filled in from the version check performed by Read
	Version int      `json:"-"`
	Puzzles []Puzzle `json:"puzzles"`
}

// JSONSchemaExtend extends the JSON schema for a document
func (Document) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Properties.Set("version", &jsonschema.Schema{
		Type:        "integer",
		Description: "Puzzle document schema version, only 1 is supported",
	})
	schema.Required = append([]string{"version"}, schema.Required...)

	if puzzles, ok := schema.Properties.Get("puzzles"); ok && puzzles != nil {
		puzzles.Description = "Puzzles in play order, the index of each puzzle names its generated arrays"
	}
}

// Puzzle is one complete level of the game
type Puzzle struct {
	Book                int            `json:"book"`
	Title               string         `json:"title"`
	Clue                string         `json:"clue"`
	CutsceneStart       []CutsceneLine `json:"cutscene_start"`
	CutsceneEnd         []CutsceneLine `json:"cutscene_end"`
	CutsceneEnvironment int            `json:"cutscene_environment"`
	Shuffles            int            `json:"shuffles" jsonschema:"minimum=0"`

	// BuddyOrder is the order buddies are displayed and emitted in
	BuddyOrder []string `json:"-"`
	// BuddyDetails maps a buddy name to its piece layout
	BuddyDetails map[string]BuddyDetail `json:"-"`
}

// JSONSchemaExtend describes both accepted buddy layouts
//
// Buddies are either a mapping of name to detail, or a list of names whose details
// live under "buddies_detail" or under a puzzle level key named after the buddy.
// Puzzle level keys are left open here, the ones naming a listed buddy are checked on read.
func (Puzzle) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Description = "A single puzzle"

	detail := BuddyDetailSchema()

	schema.Properties.Set("buddies", &jsonschema.Schema{
		Description: "Buddies in display order",
		OneOf: []*jsonschema.Schema{
			{
				Type:        "array",
				Description: "Buddy names, details are read from buddies_detail or from a key named after each buddy",
				Items:       &jsonschema.Schema{Type: "string", Pattern: BuddyNamePattern.String()},
				UniqueItems: true,
			},
			{
				Type:                 "object",
				Description:          "Map of buddy name to piece layout, key order is display order",
				PropertyNames:        &jsonschema.Schema{Pattern: BuddyNamePattern.String()},
				AdditionalProperties: detail,
			},
		},
	})
	schema.Properties.Set("buddies_detail", &jsonschema.Schema{
		Type:                 "object",
		Description:          "Map of buddy name to piece layout, used when buddies is a list",
		PropertyNames:        &jsonschema.Schema{Pattern: BuddyNamePattern.String()},
		AdditionalProperties: detail,
	})
	schema.Required = append(schema.Required, "buddies")

	// list layouts may keep the detail under a key named after the buddy, any other key is ignored
	schema.AdditionalProperties = jsonschema.TrueSchema

	if book, ok := schema.Properties.Get("book"); ok && book != nil {
		book.Description = "Book (chapter) the puzzle belongs to"
	}
	if title, ok := schema.Properties.Get("title"); ok && title != nil {
		title.Description = "Puzzle title, emitted verbatim as a string literal"
	}
	if clue, ok := schema.Properties.Get("clue"); ok && clue != nil {
		clue.Description = "Puzzle clue, emitted verbatim as a string literal"
	}
	if env, ok := schema.Properties.Get("cutscene_environment"); ok && env != nil {
		env.Description = "Background used for both cutscenes"
	}
	if shuffles, ok := schema.Properties.Get("shuffles"); ok && shuffles != nil {
		shuffles.Description = "Number of shuffles before the puzzle starts"
	}
}

// CutsceneLine is a single line of dialogue shown before or after a puzzle
type CutsceneLine struct {
	View     View     `json:"view"`
	Position Position `json:"position"`
	// Text may span several lines
	Text string `json:"text"`
}

// BuddyDetail is the start and end layout of one buddy's pieces
type BuddyDetail struct {
	PiecesStart Sides[StartPiece] `json:"pieces_start"`
	PiecesEnd   Sides[EndPiece]   `json:"pieces_end"`
}

// BuddyDetailSchema returns the inlined JSON schema for a buddy detail
func BuddyDetailSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	s := reflector.Reflect(&BuddyDetail{})
	s.Version = ""
	s.ID = ""
	s.Description = "Piece layout of a buddy at the start and at the end of the puzzle"
	return s
}

// StartPiece is a piece as it is laid out when the puzzle starts
type StartPiece struct {
	// Buddy is the name of the buddy the piece comes from
	Buddy string `json:"buddy"`
	Part  Part   `json:"part"`
}

// EndPiece is a piece as it must be laid out to solve the puzzle
type EndPiece struct {
	Buddy string `json:"buddy"`
	Part  Part   `json:"part"`
	// Solve marks pieces that must be in place for the puzzle to count as solved
	Solve bool `json:"solve"`
}

// DocumentSchema returns a JSON schema for a v1 puzzle document
func DocumentSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	schema := reflector.Reflect(&Document{})

	schema.ID = "https://raw.githubusercontent.com/defenseunicorns/cubebuddies/main/schema/v1/schema.json"

	return schema
}
