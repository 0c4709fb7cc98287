// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package cubebuddies converts CubeBuddies puzzle documents into C++ headers
package cubebuddies

import (
	"bytes"
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/defenseunicorns/cubebuddies/config"
	"github.com/defenseunicorns/cubebuddies/schema"
	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

// ConvertOptions control how a puzzle document is validated and rendered
type ConvertOptions struct {
	// Enums are the accepted enum values, defaults to v1.DefaultEnumSet()
	Enums *v1.EnumSet
	// EnumPolicy decides what to do with unknown enum values, defaults to config.DefaultEnumPolicy
	EnumPolicy config.EnumPolicy
	// GeneratedBy is written in the header comment
	GeneratedBy string
	// Filter drops the puzzles it does not match after validation
	Filter Filter
}

func (o ConvertOptions) enums() v1.EnumSet {
	if o.Enums == nil {
		return v1.DefaultEnumSet()
	}
	return *o.Enums
}

// Load reads, validates and filters the puzzle document at src
//
// Unknown enum values are logged instead of returned when the policy is passthrough
func Load(ctx context.Context, fsys afero.Fs, src string, opts ConvertOptions) (v1.Document, error) {
	logger := log.FromContext(ctx)

	f, err := fsys.Open(src)
	if err != nil {
		return v1.Document{}, &FileIOError{Op: "open", Path: src, Err: err}
	}
	defer f.Close()

	doc, err := v1.Read(f)
	if err != nil {
		var pErr *schema.InputParseError
		var vErr *schema.SchemaVersionError
		if errors.As(err, &pErr) || errors.As(err, &vErr) {
			return v1.Document{}, schema.WithSource(err, src)
		}
		return v1.Document{}, &FileIOError{Op: "read", Path: src, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return v1.Document{}, err
	}

	if err := v1.Validate(doc, opts.enums()); err != nil {
		err = schema.WithSource(err, src)

		policy := opts.EnumPolicy
		if policy == "" {
			policy = config.DefaultEnumPolicy
		}
		if policy == config.EnumPolicyStrict {
			return v1.Document{}, err
		}

		unknown, rest := splitUnknownEnums(err)
		if rest != nil {
			return v1.Document{}, rest
		}
		for _, u := range unknown {
			logger.Warn("unknown value emitted as-is", "path", u.Path, u.Field, u.Value)
		}
	}

	logger.Debug("loaded puzzles", "src", src, "count", len(doc.Puzzles))

	return opts.Filter.Apply(ctx, doc)
}

// splitUnknownEnums separates unknown enum errors from every other error in a joined error
func splitUnknownEnums(err error) ([]*schema.UnknownEnumValueError, error) {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	var unknown []*schema.UnknownEnumValueError
	var rest []error
	for _, e := range errs {
		var uErr *schema.UnknownEnumValueError
		if errors.As(e, &uErr) {
			unknown = append(unknown, uErr)
			continue
		}
		rest = append(rest, e)
	}
	return unknown, errors.Join(rest...)
}

// Convert reads the puzzle document at src and writes the generated header to dst
//
// The header is rendered in memory and written atomically, dst is never left half written
func Convert(ctx context.Context, fsys afero.Fs, src, dst string, opts ConvertOptions) error {
	logger := log.FromContext(ctx)

	doc, err := Load(ctx, fsys, src, opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Render(&buf, doc, RenderOptions{GeneratedBy: opts.GeneratedBy}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomicWrite(fsys, dst, buf.Bytes()); err != nil {
		return err
	}

	logger.Debug("wrote header", "dst", dst, "puzzles", len(doc.Puzzles), "bytes", buf.Len())

	return nil
}
