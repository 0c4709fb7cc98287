// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"fmt"
	"strings"
)

// FileIOError is returned when the source cannot be read or the destination cannot be written
type FileIOError struct {
	// Op is the failed operation (open, read, write, rename, ...)
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *FileIOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *FileIOError) Unwrap() error {
	return e.Err
}

// UsageError is returned when the command line cannot be understood
type UsageError struct {
	Err error
}

// Error implements the error interface
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *UsageError) Unwrap() error {
	return e.Err
}

// MissingArgumentError is returned when required positional arguments were not supplied
type MissingArgumentError struct {
	Missing []string
}

// Error implements the error interface
func (e *MissingArgumentError) Error() string {
	return "missing required argument(s): " + strings.Join(e.Missing, ", ")
}
