// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package schema

import (
	"fmt"
	"strings"
)

// InputParseError is returned when a puzzle document is not well formed or does not match its schema
type InputParseError struct {
	// Source is the file the document was read from, may be empty
	Source string
	// Path is the location of the offending field (e.g. ".puzzles[0].book"), may be empty
	Path string
	Err  error
}

// Error implements the error interface
func (e *InputParseError) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the underlying cause
func (e *InputParseError) Unwrap() error {
	return e.Err
}

// SchemaVersionError is returned when a document declares a version this tool cannot read
type SchemaVersionError struct {
	Source   string
	Expected int
	// Got is the raw version value found in the document
	Got any
	Err error
}

// Error implements the error interface
func (e *SchemaVersionError) Error() string {
	src := e.Source
	if src == "" {
		src = "document"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s is not a supported version: %v", src, e.Err)
	}
	return fmt.Sprintf("%s is not a supported version: expected %d, got %v", src, e.Expected, e.Got)
}

// Unwrap returns the underlying cause, if any
func (e *SchemaVersionError) Unwrap() error {
	return e.Err
}

// UnknownEnumValueError is returned when an enum-like field holds a value outside of its known set
type UnknownEnumValueError struct {
	Source string
	Path   string
	Field  string
	Value  string
	Known  []string
}

// Error implements the error interface
func (e *UnknownEnumValueError) Error() string {
	msg := fmt.Sprintf("%s: unknown %s %q (one of [%s])", e.Path, e.Field, e.Value, strings.Join(e.Known, ", "))
	if e.Source != "" {
		return e.Source + ": " + msg
	}
	return msg
}

// WithSource records the file a document was read from on every document error within err
//
// Joined errors are walked so that each schema violation names the source file
func WithSource(err error, src string) error {
	walk(err, func(e error) {
		switch typed := e.(type) {
		case *InputParseError:
			if typed.Source == "" {
				typed.Source = src
			}
		case *SchemaVersionError:
			if typed.Source == "" {
				typed.Source = src
			}
		case *UnknownEnumValueError:
			if typed.Source == "" {
				typed.Source = src
			}
		}
	})
	return err
}

func walk(err error, fn func(error)) {
	if err == nil {
		return
	}
	fn(err)
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			walk(e, fn)
		}
	case interface{ Unwrap() error }:
		walk(u.Unwrap(), fn)
	}
}
