// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package config

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/pflag"
)

// EnumPolicy defines what happens when a puzzle uses an enum value that is not known
type EnumPolicy string

var _ pflag.Value = (*EnumPolicy)(nil)

const (
	// EnumPolicyStrict fails the conversion when any unknown value is found
	EnumPolicyStrict EnumPolicy = "strict"
	// EnumPolicyPassthrough logs a warning and emits the value uppercased, as-is
	EnumPolicyPassthrough EnumPolicy = "passthrough"
	// DefaultEnumPolicy is the policy used when none is specified
	//
	// Game headers define the enum identifiers, so values outside the known sets are emitted by default
	DefaultEnumPolicy EnumPolicy = EnumPolicyPassthrough
)

// AvailableEnumPolicies returns a list of available enum policies
func AvailableEnumPolicies() []string {
	return []string{
		string(EnumPolicyStrict),
		string(EnumPolicyPassthrough),
	}
}

// String implements the pflag.Value and fmt.Stringer interfaces
func (p *EnumPolicy) String() string {
	return string(*p)
}

// Set implements the pflag.Value interface
func (p *EnumPolicy) Set(value string) error {
	switch value {
	case string(EnumPolicyStrict):
		*p = EnumPolicyStrict
	case string(EnumPolicyPassthrough):
		*p = EnumPolicyPassthrough
	default:
		return fmt.Errorf("invalid enum policy: %s", value)
	}
	return nil
}

// Type implements the pflag.Value interface
func (p *EnumPolicy) Type() string {
	return "string"
}

// JSONSchemaExtend extends the JSON schema for EnumPolicy
func (EnumPolicy) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Type = "string"
	all := []any{}
	for _, p := range AvailableEnumPolicies() {
		all = append(all, p)
	}
	schema.Enum = all
	schema.Description = "Behavior when a view, position, part or buddy reference is not known"
}
