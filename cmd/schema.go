// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/defenseunicorns/cubebuddies"
	configv0 "github.com/defenseunicorns/cubebuddies/config/v0"
	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

func newSchemaCmd() *cobra.Command {
	var cfg bool

	cmd := &cobra.Command{
		Use:   "schema [version]",
		Short: "Print the JSON schema for puzzle documents",
		Long: `Print the JSON schema for puzzle documents.

Without a version, a meta schema dispatching on the "version" field is printed.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{strconv.Itoa(v1.SchemaVersion)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *jsonschema.Schema
			switch {
			case cfg:
				s = configv0.Schema()
			case len(args) == 1:
				if args[0] != strconv.Itoa(v1.SchemaVersion) {
					return fmt.Errorf("unsupported schema version: expected %d, got %q", v1.SchemaVersion, args[0])
				}
				s = cubebuddies.DocumentSchema(args[0])
			default:
				s = cubebuddies.DocumentSchema("")
			}

			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg, "config", false, "Print the schema of the config file instead")

	return cmd
}
