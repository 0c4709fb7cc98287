// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"fmt"
	"io"
	"strings"

	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

// DefaultGeneratedBy is the generator name written into the header comment
const DefaultGeneratedBy = "cubebuddies"

// Banner is the comment separator written between sections of the header
var Banner = strings.Repeat("/", 100) + "\n"

// RenderOptions tweak the generated header
type RenderOptions struct {
	// GeneratedBy is written in the "Generated by" comment, defaults to DefaultGeneratedBy
	GeneratedBy string
}

// printer remembers the first write error so rendering code can stay linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) section(title string) {
	p.print(Banner)
	p.printf("// %s\n", title)
	p.print(Banner)
	p.print("\n")
}

// Render writes the C++ header for a puzzle document
//
// Per puzzle i it declares kCutsceneLinesStart<i>, kCutsceneLinesEnd<i>, kBuddies<i>,
// kPiecesStart<i> and kPiecesEnd<i>, then a single kPuzzles array referencing all of them.
func Render(w io.Writer, doc v1.Document, opts RenderOptions) error {
	generatedBy := opts.GeneratedBy
	if generatedBy == "" {
		generatedBy = DefaultGeneratedBy
	}

	p := &printer{w: w}

	p.section(fmt.Sprintf("Generated by %s - Do not edit by hand!", generatedBy))

	for i, puzzle := range doc.Puzzles {
		p.section(fmt.Sprintf("Puzzle %d", i))

		renderCutscene(p, fmt.Sprintf("kCutsceneLinesStart%d", i), puzzle.CutsceneStart)
		renderCutscene(p, fmt.Sprintf("kCutsceneLinesEnd%d", i), puzzle.CutsceneEnd)

		ids := make([]string, 0, len(puzzle.BuddyOrder))
		for _, name := range puzzle.BuddyOrder {
			ids = append(ids, BuddyIdentifier(name))
		}
		p.printf("const BuddyId kBuddies%d[] = { %s };\n", i, strings.Join(ids, ", "))

		p.printf("const Piece kPiecesStart%d[][NUM_SIDES] =\n", i)
		p.print("{\n")
		for _, name := range puzzle.BuddyOrder {
			p.print("    {\n")
			for _, piece := range puzzle.BuddyDetails[name].PiecesStart.All() {
				p.printf("        Piece(%s, Piece::%s),\n", BuddyIdentifier(piece.Buddy), Identifier("part", string(piece.Part)))
			}
			p.print("    },\n")
		}
		p.print("};\n")

		p.printf("const Piece kPiecesEnd%d[][NUM_SIDES] =\n", i)
		p.print("{\n")
		for _, name := range puzzle.BuddyOrder {
			p.print("    {\n")
			for _, piece := range puzzle.BuddyDetails[name].PiecesEnd.All() {
				p.printf("        Piece(%s, Piece::%s, %s),\n", BuddyIdentifier(piece.Buddy), Identifier("part", string(piece.Part)), boolLiteral(piece.Solve))
			}
			p.print("    },\n")
		}
		p.print("};\n")
		p.print("\n")
	}

	p.section("Puzzles Array")

	p.print("const Puzzle kPuzzles[] =\n")
	p.print("{\n")
	for i, puzzle := range doc.Puzzles {
		p.print("    Puzzle(\n")
		p.printf("        %d,\n", puzzle.Book)
		p.printf("        \"%s\",\n", puzzle.Title)
		p.printf("        \"%s\",\n", puzzle.Clue)
		p.printf("        kCutsceneLinesStart%d, arraysize(kCutsceneLinesStart%d),\n", i, i)
		p.printf("        kCutsceneLinesEnd%d, arraysize(kCutsceneLinesEnd%d),\n", i, i)
		p.printf("        %d,\n", puzzle.CutsceneEnvironment)
		p.printf("        kBuddies%d, arraysize(kBuddies%d),\n", i, i)
		p.printf("        %d,\n", puzzle.Shuffles)
		p.printf("        kPiecesStart%d, kPiecesEnd%d),\n", i, i)
	}
	p.print("};\n")

	return p.err
}

func renderCutscene(p *printer, name string, lines []v1.CutsceneLine) {
	p.printf("const CutsceneLine %s[] =\n", name)
	p.print("{\n")
	for _, line := range lines {
		p.printf("    CutsceneLine(CutsceneLine::%s, CutsceneLine::%s, \"%s\"),\n",
			Identifier("view", string(line.View)),
			Identifier("position", string(line.Position)),
			EscapeText(line.Text),
		)
	}
	p.print("};\n")
}
