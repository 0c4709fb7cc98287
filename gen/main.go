// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package main provides the entry point for the application.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/defenseunicorns/cubebuddies"
	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

func write(p string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, append(b, '\n'), 0644)
}

func run(root string) error {
	if err := write(filepath.Join(root, "cubebuddies.schema.json"), cubebuddies.DocumentSchema("")); err != nil {
		return err
	}
	return write(filepath.Join(root, "schema", "v1", "schema.json"), cubebuddies.DocumentSchema(strconv.Itoa(v1.SchemaVersion)))
}

// main is the entry point for the application
func main() {
	// usage: `go run gen/main.go`
	if err := run(""); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
