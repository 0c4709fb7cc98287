// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// atomicWrite writes b to p.tmp and renames it over p, so p is either untouched or complete
func atomicWrite(fsys afero.Fs, p string, b []byte) (err error) {
	perm := os.FileMode(0o644)

	// only regular files may be replaced, an existing file keeps its permissions
	info, statErr := fsys.Stat(p)
	if statErr == nil {
		if !info.Mode().IsRegular() {
			return &FileIOError{Op: "write", Path: p, Err: fmt.Errorf("%s must be a path to a regular file", p)}
		}
		perm = info.Mode().Perm()
	}

	tmpPath := p + ".tmp"
	tmp, err := fsys.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return &FileIOError{Op: "create", Path: tmpPath, Err: err}
	}
	defer func() {
		if err != nil {
			// ignore cleanup errors, the write error is the one worth reporting
			_ = fsys.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return &FileIOError{Op: "write", Path: tmpPath, Err: err}
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &FileIOError{Op: "sync", Path: tmpPath, Err: err}
	}

	if err := tmp.Close(); err != nil {
		return &FileIOError{Op: "close", Path: tmpPath, Err: err}
	}

	if err := fsys.Rename(tmpPath, p); err != nil {
		return &FileIOError{Op: "rename", Path: tmpPath, Err: err}
	}

	return nil
}
