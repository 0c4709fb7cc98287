// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package config provides system-level configuration for cubebuddies
package config

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the file name of the enum and policy config
const DefaultFileName = "config.yaml"

// HomeEnv overrides the config directory, for build machines that convert puzzles without a usable $HOME
const HomeEnv = "CUBEBUDDIES_HOME"

// DefaultDirectory returns the cubebuddies config directory
//
// $CUBEBUDDIES_HOME when set, $HOME/.cubebuddies otherwise.
func DefaultDirectory() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".cubebuddies"), nil
}

// DefaultPath returns the path of the config file read when --config is not given
func DefaultPath() (string, error) {
	dir, err := DefaultDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultFileName), nil
}
