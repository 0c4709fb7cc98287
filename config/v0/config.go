// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package v0 provides the schema for v0 of the system config file for cubebuddies
//
// v0 allows for breaking changes without a major version increase
package v0

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"

	"github.com/defenseunicorns/cubebuddies/config"
	v1 "github.com/defenseunicorns/cubebuddies/schema/v1"
)

// SchemaVersion is the current schema version for configs
const SchemaVersion = "v0"

// Versioned is used to grab the schema version of a config file
type Versioned struct {
	SchemaVersion string `json:"schema-version"`
}

// Config is the system configuration file for cubebuddies
type Config struct {
	SchemaVersion string            `json:"schema-version"`
	Enums         v1.EnumSet        `json:"enums"`
	UnknownEnums  config.EnumPolicy `json:"unknown-enums"`
}

// JSONSchemaExtend extends the JSON schema for a config
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schemaVersion, ok := schema.Properties.Get("schema-version"); ok && schemaVersion != nil {
		schemaVersion.Description = "Config schema version"
		schemaVersion.Enum = []any{SchemaVersion}
		schemaVersion.AdditionalProperties = jsonschema.FalseSchema
	}
}

// EnumSet returns the built-in enum values extended with the configured ones
func (c *Config) EnumSet() v1.EnumSet {
	return v1.DefaultEnumSet().Merge(c.Enums)
}

// LoadConfig reads and validates a config file
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{
		SchemaVersion: SchemaVersion,
		UnknownEnums:  config.DefaultEnumPolicy,
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var versioned Versioned
	if err := yaml.Unmarshal(data, &versioned); err != nil {
		return nil, err
	}

	switch version := versioned.SchemaVersion; version {
	case SchemaVersion:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		return cfg, Validate(cfg)
	default:
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, version)
	}
}

// LoadDefaultConfig loads the config file from the default directory
//
// If the file does not exist, a valid default config is returned
func LoadDefaultConfig(fsys afero.Fs) (*Config, error) {
	p, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{
				SchemaVersion: SchemaVersion,
				UnknownEnums:  config.DefaultEnumPolicy,
			}, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return cfg, nil
}

var schemaOnce = sync.OnceValues(func() (string, error) {
	s := Schema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a config adheres to the JSON schema
func Validate(cfg *Config) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}

// Schema returns the JSON schema for the Config type
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}
