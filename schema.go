// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cubebuddies

import (
	"strconv"

	"github.com/invopop/jsonschema"

	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

// DocumentSchema generates the schema for either a given version, or all versions in one meta schema
func DocumentSchema(version string) *jsonschema.Schema {
	var schema *jsonschema.Schema

	switch version {
	case strconv.Itoa(v1.SchemaVersion):
		schema = v1.DocumentSchema()
	default:
		schema = &jsonschema.Schema{
			If: &jsonschema.Schema{
				Properties: jsonschema.NewProperties(),
			},
			Then:    v1.DocumentSchema(),
			ID:      "https://raw.githubusercontent.com/defenseunicorns/cubebuddies/main/cubebuddies.schema.json",
			Version: jsonschema.Version,
		}

		schema.If.Properties.Set("version", &jsonschema.Schema{
			Type: "integer",
			Enum: []any{v1.SchemaVersion},
		})
	}

	return schema
}
