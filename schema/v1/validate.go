// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/xeipuuv/gojsonschema"

	"github.com/defenseunicorns/cubebuddies/schema"
)

// Read reads a puzzle document
//
// The version is checked before anything else, then the document is checked against
// the v1 JSON schema and decoded.
func Read(r io.Reader) (Document, error) {
	if rs, ok := r.(io.Seeker); ok {
		_, err := rs.Seek(0, io.SeekStart)
		if err != nil {
			return Document{}, err
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, &schema.InputParseError{Err: errors.New("document is empty")}
	}

	var versioned schema.Versioned
	if err := yaml.Unmarshal(data, &versioned); err != nil {
		return Document{}, &schema.InputParseError{Err: err}
	}

	version, err := versioned.Int()
	if err != nil {
		return Document{}, &schema.SchemaVersionError{Expected: SchemaVersion, Got: versioned.Version, Err: err}
	}

	switch version {
	case SchemaVersion:
		if err := ValidateStructure(data); err != nil {
			return Document{}, err
		}
		doc, err := decode(data)
		if err != nil {
			return Document{}, err
		}
		doc.Version = version
		return doc, nil
	default:
		return Document{}, &schema.SchemaVersionError{Expected: SchemaVersion, Got: version}
	}
}

func decode(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, &schema.InputParseError{Err: err}
	}

	// a second pass keeps key order, which is the buddy order for mapping layouts
	var ordered struct {
		Puzzles []yaml.MapSlice `json:"puzzles"`
	}
	if err := yaml.UnmarshalWithOptions(data, &ordered, yaml.UseOrderedMap()); err != nil {
		return Document{}, &schema.InputParseError{Err: err}
	}

	if len(ordered.Puzzles) != len(doc.Puzzles) {
		return Document{}, &schema.InputParseError{Path: ".puzzles", Err: errors.New("puzzle count changed between decoding passes")}
	}

	for i := range doc.Puzzles {
		if err := resolveBuddies(&doc.Puzzles[i], ordered.Puzzles[i], fmt.Sprintf(".puzzles[%d]", i)); err != nil {
			return Document{}, err
		}
	}

	return doc, nil
}

// resolveBuddies fills in the buddy order and details from either of the accepted layouts
func resolveBuddies(p *Puzzle, fields yaml.MapSlice, path string) error {
	raw, ok := lookup(fields, "buddies")
	if !ok {
		return &schema.InputParseError{Path: path + ".buddies", Err: errors.New("is required")}
	}

	p.BuddyDetails = make(map[string]BuddyDetail)

	switch buddies := raw.(type) {
	case yaml.MapSlice:
		p.BuddyOrder = make([]string, 0, len(buddies))
		for _, item := range buddies {
			name := fmt.Sprint(item.Key)
			var detail BuddyDetail
			if err := decodeNode(item.Value, &detail); err != nil {
				return &schema.InputParseError{Path: path + ".buddies." + name, Err: err}
			}
			p.BuddyOrder = append(p.BuddyOrder, name)
			p.BuddyDetails[name] = detail
		}
	case []any:
		p.BuddyOrder = make([]string, 0, len(buddies))
		for idx, b := range buddies {
			name, ok := b.(string)
			if !ok {
				return &schema.InputParseError{Path: fmt.Sprintf("%s.buddies[%d]", path, idx), Err: fmt.Errorf("expected a buddy name, got %T", b)}
			}
			p.BuddyOrder = append(p.BuddyOrder, name)
		}

		details, _ := lookup(fields, "buddies_detail")
		detailMap, _ := details.(yaml.MapSlice)

		for _, name := range p.BuddyOrder {
			node, ok := lookup(detailMap, name)
			detailPath := path + ".buddies_detail." + name
			if !ok {
				node, ok = lookup(fields, name)
				detailPath = path + "." + name
				if ok {
					if err := validateDetail(node, detailPath); err != nil {
						return err
					}
				}
			}
			if !ok {
				// reported by Validate
				continue
			}
			var detail BuddyDetail
			if err := decodeNode(node, &detail); err != nil {
				return &schema.InputParseError{Path: detailPath, Err: err}
			}
			p.BuddyDetails[name] = detail
		}
	default:
		return &schema.InputParseError{Path: path + ".buddies", Err: fmt.Errorf("expected a list or a mapping, got %T", raw)}
	}

	return nil
}

func lookup(fields yaml.MapSlice, key string) (any, bool) {
	for _, item := range fields {
		if fmt.Sprint(item.Key) == key {
			return item.Value, true
		}
	}
	return nil, false
}

func decodeNode(node any, out any) error {
	b, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

var schemaOnce = sync.OnceValues(func() (string, error) {
	s := DocumentSchema()
	b, err := json.Marshal(s)
	return string(b), err
})

var detailSchemaOnce = sync.OnceValues(func() (string, error) {
	b, err := json.Marshal(BuddyDetailSchema())
	return string(b), err
})

// validateDetail checks a buddy detail kept under a puzzle level key against the buddy detail schema
func validateDetail(node any, path string) error {
	s, err := detailSchemaOnce()
	if err != nil {
		return err
	}

	b, err := yaml.Marshal(node)
	if err != nil {
		return &schema.InputParseError{Path: path, Err: err}
	}
	asJSON, err := yaml.YAMLToJSON(b)
	if err != nil {
		return &schema.InputParseError{Path: path, Err: err}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(s), gojsonschema.NewBytesLoader(asJSON))
	if err != nil {
		return &schema.InputParseError{Path: path, Err: err}
	}

	var resErr error
	for _, re := range result.Errors() {
		p := path
		if field := re.Field(); field != "" && field != "(root)" {
			p += fieldPath(field)
		}
		resErr = errors.Join(resErr, &schema.InputParseError{
			Path: p,
			Err:  errors.New(re.Description()),
		})
	}

	return resErr
}

// ValidateStructure checks raw document bytes against the v1 JSON schema
//
// Every violation is returned as an *schema.InputParseError carrying the offending field path
func ValidateStructure(data []byte) error {
	s, err := schemaOnce()
	if err != nil {
		return err
	}

	asJSON, err := yaml.YAMLToJSON(data)
	if err != nil {
		return &schema.InputParseError{Err: err}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(s), gojsonschema.NewBytesLoader(asJSON))
	if err != nil {
		return &schema.InputParseError{Err: err}
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, re := range result.Errors() {
		resErr = errors.Join(resErr, &schema.InputParseError{
			Path: fieldPath(re.Field()),
			Err:  errors.New(re.Description()),
		})
	}

	return resErr
}

// fieldPath turns a gojsonschema field ("puzzles.0.book") into ".puzzles[0].book"
func fieldPath(field string) string {
	if field == "" || field == "(root)" {
		return "."
	}

	var sb strings.Builder
	for part := range strings.SplitSeq(field, ".") {
		if isIndex(part) {
			sb.WriteString("[" + part + "]")
			continue
		}
		sb.WriteString("." + part)
	}
	return sb.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Validate performs the checks a JSON schema cannot express
//
// Every name in a puzzle's buddy order must have a detail entry, every enum-like value must
// be part of enums and every piece must come from a buddy of the same puzzle.
// All problems are reported, joined together.
func Validate(doc Document, enums EnumSet) error {
	if doc.Version != SchemaVersion {
		return &schema.SchemaVersionError{Expected: SchemaVersion, Got: doc.Version}
	}

	var errs []error

	for i, p := range doc.Puzzles {
		path := fmt.Sprintf(".puzzles[%d]", i)

		for idx, line := range p.CutsceneStart {
			errs = append(errs, validateLine(line, fmt.Sprintf("%s.cutscene_start[%d]", path, idx), enums)...)
		}
		for idx, line := range p.CutsceneEnd {
			errs = append(errs, validateLine(line, fmt.Sprintf("%s.cutscene_end[%d]", path, idx), enums)...)
		}

		seen := make(map[string]int, len(p.BuddyOrder))
		for idx, name := range p.BuddyOrder {
			if ok := BuddyNamePattern.MatchString(name); !ok {
				errs = append(errs, &schema.InputParseError{
					Path: fmt.Sprintf("%s.buddies[%d]", path, idx),
					Err:  fmt.Errorf("buddy name %q does not satisfy %q", name, BuddyNamePattern.String()),
				})
			}
			if prev, ok := seen[strings.ToLower(name)]; ok {
				errs = append(errs, &schema.InputParseError{
					Path: fmt.Sprintf("%s.buddies[%d]", path, idx),
					Err:  fmt.Errorf("buddy %q is already declared at index %d", name, prev),
				})
			}
			seen[strings.ToLower(name)] = idx

			detail, ok := p.BuddyDetails[name]
			if !ok {
				errs = append(errs, &schema.InputParseError{
					Path: fmt.Sprintf("%s.buddies[%d]", path, idx),
					Err:  fmt.Errorf("buddy %q has no piece detail", name),
				})
				continue
			}

			for side, piece := range detail.PiecesStart.All() {
				piecePath := fmt.Sprintf("%s.buddies.%s.pieces_start.%s", path, name, side)
				errs = append(errs, validatePiece(piece.Buddy, piece.Part, piecePath, p.BuddyOrder, enums)...)
			}
			for side, piece := range detail.PiecesEnd.All() {
				piecePath := fmt.Sprintf("%s.buddies.%s.pieces_end.%s", path, name, side)
				errs = append(errs, validatePiece(piece.Buddy, piece.Part, piecePath, p.BuddyOrder, enums)...)
			}
		}
	}

	return errors.Join(errs...)
}

func validateLine(line CutsceneLine, path string, enums EnumSet) []error {
	var errs []error
	if !containsFold(enums.Views, string(line.View)) {
		errs = append(errs, &schema.UnknownEnumValueError{Path: path + ".view", Field: "view", Value: string(line.View), Known: enums.Views})
	}
	if !containsFold(enums.Positions, string(line.Position)) {
		errs = append(errs, &schema.UnknownEnumValueError{Path: path + ".position", Field: "position", Value: string(line.Position), Known: enums.Positions})
	}
	return errs
}

func validatePiece(buddy string, part Part, path string, buddies []string, enums EnumSet) []error {
	var errs []error
	if !containsFold(buddies, buddy) {
		errs = append(errs, &schema.UnknownEnumValueError{Path: path + ".buddy", Field: "buddy", Value: buddy, Known: buddies})
	}
	if !containsFold(enums.Parts, string(part)) {
		errs = append(errs, &schema.UnknownEnumValueError{Path: path + ".part", Field: "part", Value: string(part), Known: enums.Parts})
	}
	return errs
}

// ReadAndValidate reads and validates a puzzle document
func ReadAndValidate(r io.Reader, enums EnumSet) (Document, error) {
	doc, err := Read(r)
	if err != nil {
		return Document{}, err
	}
	return doc, Validate(doc, enums)
}
