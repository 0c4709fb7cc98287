// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defenseunicorns/cubebuddies/config"
	"github.com/defenseunicorns/cubebuddies/schema"
	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

func TestConvert(t *testing.T) {
	ctx := log.WithContext(t.Context(), log.New(&strings.Builder{}))

	t.Run("minimal document", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "puzzles.json", []byte(puzzleJSON(1, "Closeup")), 0o644))

		require.NoError(t, Convert(ctx, fsys, "puzzles.json", "Puzzles.h", ConvertOptions{}))

		b, err := afero.ReadFile(fsys, "Puzzles.h")
		require.NoError(t, err)
		out := string(b)

		assert.True(t, strings.HasPrefix(out, section("Generated by cubebuddies - Do not edit by hand!")))
		assert.Contains(t, out, "const BuddyId kBuddies0[] = { BUDDY_ORBO };\n")
		assert.Contains(t, out, "        5,\n")
		assert.Contains(t, out, `    CutsceneLine(CutsceneLine::VIEW_CLOSEUP, CutsceneLine::POSITION_LEFT, "Hi\nthere"),`)
		assert.Contains(t, out, "        Piece(BUDDY_ORBO, Piece::PART_HAIR, true),\n")
		assert.Contains(t, out, "        Piece(BUDDY_ORBO, Piece::PART_EYE_LEFT, false),\n")
		assert.Equal(t, 1, strings.Count(out, "const Puzzle kPuzzles[]"))

		_, err = fsys.Stat("Puzzles.h.tmp")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("generator name", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "puzzles.json", []byte(puzzleJSON(1, "normal")), 0o644))

		require.NoError(t, Convert(ctx, fsys, "puzzles.json", "Puzzles.h", ConvertOptions{GeneratedBy: "puzzlegen"}))

		b, err := afero.ReadFile(fsys, "Puzzles.h")
		require.NoError(t, err)
		assert.Contains(t, string(b), "// Generated by puzzlegen - Do not edit by hand!\n")
	})

	t.Run("unsupported version leaves destination untouched", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "puzzles.json", []byte(puzzleJSON(2, "normal")), 0o644))

		err := Convert(ctx, fsys, "puzzles.json", "Puzzles.h", ConvertOptions{})
		var vErr *schema.SchemaVersionError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "puzzles.json", vErr.Source)
		require.EqualError(t, err, "puzzles.json is not a supported version: expected 1, got 2")

		_, err = fsys.Stat("Puzzles.h")
		assert.True(t, errors.Is(err, os.ErrNotExist))

		require.NoError(t, afero.WriteFile(fsys, "Puzzles.h", []byte("previous"), 0o644))
		require.Error(t, Convert(ctx, fsys, "puzzles.json", "Puzzles.h", ConvertOptions{}))
		b, err := afero.ReadFile(fsys, "Puzzles.h")
		require.NoError(t, err)
		assert.Equal(t, "previous", string(b))
	})

	t.Run("missing source", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		err := Convert(ctx, fsys, "nope.json", "Puzzles.h", ConvertOptions{})
		var ioErr *FileIOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "open", ioErr.Op)
		assert.Equal(t, "nope.json", ioErr.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed source", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "puzzles.json", []byte(`{"version": 1, "puzzles": [`), 0o644))

		err := Convert(ctx, fsys, "puzzles.json", "Puzzles.h", ConvertOptions{})
		var pErr *schema.InputParseError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, "puzzles.json", pErr.Source)
	})

	t.Run("unwritable destination", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(base, "puzzles.json", []byte(puzzleJSON(1, "normal")), 0o644))

		err := Convert(ctx, afero.NewReadOnlyFs(base), "puzzles.json", "Puzzles.h", ConvertOptions{})
		var ioErr *FileIOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "create", ioErr.Op)
	})

	t.Run("canceled context", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "puzzles.json", []byte(puzzleJSON(1, "normal")), 0o644))

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		err := Convert(canceled, fsys, "puzzles.json", "Puzzles.h", ConvertOptions{})
		require.ErrorIs(t, err, context.Canceled)

		_, err = fsys.Stat("Puzzles.h")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestConvertUnknownEnums(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "puzzles.json", []byte(puzzleJSON(1, "Shocked")), 0o644))

	t.Run("strict", func(t *testing.T) {
		ctx := log.WithContext(t.Context(), log.New(&strings.Builder{}))

		err := Convert(ctx, fsys, "puzzles.json", "strict.h", ConvertOptions{EnumPolicy: config.EnumPolicyStrict})
		var uErr *schema.UnknownEnumValueError
		require.ErrorAs(t, err, &uErr)
		assert.Equal(t, "puzzles.json", uErr.Source)
		assert.Equal(t, ".puzzles[0].cutscene_start[0].view", uErr.Path)
		assert.Equal(t, "Shocked", uErr.Value)

		_, err = fsys.Stat("strict.h")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("default emits unknown values", func(t *testing.T) {
		var logs strings.Builder
		ctx := log.WithContext(t.Context(), log.New(&logs))

		require.NoError(t, Convert(ctx, fsys, "puzzles.json", "default.h", ConvertOptions{}))

		b, err := afero.ReadFile(fsys, "default.h")
		require.NoError(t, err)
		assert.Contains(t, string(b), "CutsceneLine::VIEW_SHOCKED")
		assert.Contains(t, ansi.Strip(logs.String()), "unknown value emitted as-is")
	})

	t.Run("passthrough", func(t *testing.T) {
		var logs strings.Builder
		ctx := log.WithContext(t.Context(), log.New(&logs))

		require.NoError(t, Convert(ctx, fsys, "puzzles.json", "passthrough.h", ConvertOptions{EnumPolicy: config.EnumPolicyPassthrough}))

		b, err := afero.ReadFile(fsys, "passthrough.h")
		require.NoError(t, err)
		assert.Contains(t, string(b), "CutsceneLine::VIEW_SHOCKED, CutsceneLine::POSITION_LEFT")

		out := ansi.Strip(logs.String())
		assert.Contains(t, out, "unknown value emitted as-is")
		assert.Contains(t, out, ".puzzles[0].cutscene_start[0].view")
		assert.Contains(t, out, "Shocked")
	})

	t.Run("extended enum set", func(t *testing.T) {
		ctx := log.WithContext(t.Context(), log.New(&strings.Builder{}))

		enums := v1.DefaultEnumSet().Merge(v1.EnumSet{Views: []string{"shocked"}})
		require.NoError(t, Convert(ctx, fsys, "puzzles.json", "extended.h", ConvertOptions{Enums: &enums, EnumPolicy: config.EnumPolicyStrict}))

		b, err := afero.ReadFile(fsys, "extended.h")
		require.NoError(t, err)
		assert.Contains(t, string(b), "CutsceneLine::VIEW_SHOCKED")
	})
}

func TestConvertPassthroughKeepsOtherErrors(t *testing.T) {
	ctx := log.WithContext(t.Context(), log.New(&strings.Builder{}))

	doc := strings.Replace(puzzleJSON(1, "Shocked"), `"buddies": ["orbo"]`, `"buddies": ["orbo", "zorg"]`, 1)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "puzzles.json", []byte(doc), 0o644))

	err := Convert(ctx, fsys, "puzzles.json", "Puzzles.h", ConvertOptions{EnumPolicy: config.EnumPolicyPassthrough})
	var pErr *schema.InputParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, ".puzzles[0].buddies[1]", pErr.Path)
	assert.Contains(t, err.Error(), `buddy "zorg" has no piece detail`)

	var uErr *schema.UnknownEnumValueError
	assert.False(t, errors.As(err, &uErr))
}

func TestLoad(t *testing.T) {
	ctx := log.WithContext(t.Context(), log.New(&strings.Builder{}))

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "puzzles.yaml", []byte(puzzleJSON(1, "left")), 0o644))

	doc, err := Load(ctx, fsys, "puzzles.yaml", ConvertOptions{})
	require.NoError(t, err)
	assert.Equal(t, v1.SchemaVersion, doc.Version)
	require.Len(t, doc.Puzzles, 1)
	assert.Equal(t, []string{"orbo"}, doc.Puzzles[0].BuddyOrder)
	assert.Equal(t, "Hi\nthere", doc.Puzzles[0].CutsceneStart[0].Text)
}
