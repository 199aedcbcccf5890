// Package config loads and validates cab.config.yaml: a YAML document
// checked against an embedded JSON Schema, the same two-step shape the
// teacher's core/types/validation.go compiles parameter schemas with,
// repurposed here from runtime parameter checking to static project
// configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Config is cab's project configuration (cab.config.yaml).
type Config struct {
	// LanguageVersion pins the grammar/semantics revision a project targets,
	// checked against the "semver" format below.
	LanguageVersion string `yaml:"language_version"`
	// SourceDirs is the source_dirs list of directories holding .cab files.
	// cmd/cab does not load cab.config.yaml; its commands read a file
	// argument or stdin.
	SourceDirs []string `yaml:"source_dirs"`
	// ColorOutput is the color_output setting. No command reads it: fmt and
	// parse always write format.Palette's ANSI bracket coloring.
	ColorOutput bool `yaml:"color_output"`
}

const schemaDoc = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"language_version": {"type": "string", "format": "semver"},
		"source_dirs": {"type": "array", "items": {"type": "string"}},
		"color_output": {"type": "boolean"}
	},
	"required": ["language_version"],
	"additionalProperties": false
}`

const schemaURL = "schema://cab.config.json"

// Load parses and validates raw as a cab.config.yaml document.
func Load(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing yaml: %w", err)
	}

	asMap, err := yamlToJSONCompatible(raw)
	if err != nil {
		return Config{}, fmt.Errorf("config: normalizing yaml: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return Config{}, fmt.Errorf("config: compiling schema: %w", err)
	}
	if err := schema.Validate(asMap); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// yamlToJSONCompatible decodes raw into the map[string]interface{} shape
// jsonschema.Schema.Validate expects — yaml.v3 otherwise hands back
// map[string]interface{} with nested maps already compatible, but numeric
// types can differ (int vs float64), so we round-trip through yaml.Node to
// keep the decode path singular and explicit.
func yamlToJSONCompatible(raw []byte) (interface{}, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	var out interface{}
	if err := node.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	compiler.Formats["semver"] = func(v interface{}) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		return isSemver(s)
	}
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaDoc)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// isSemver accepts version strings with or without a leading "v", since
// semver.IsValid requires the prefix but cab.config.yaml authors write
// either form.
func isSemver(s string) bool {
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	return semver.IsValid(s)
}
