package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaDoc is the part of the generated schema needed to check config keys
type schemaDoc struct {
	Ref  string                    `json:"$ref"`
	Defs map[string]schemaProperty `json:"$defs"`
}

type schemaProperty struct {
	Ref        string                    `json:"$ref"`
	Properties map[string]schemaProperty `json:"properties"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Every key of the config must be described by the schema, and required values must be set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaDoc
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.resolve(schemaProperty{Ref: schema.Ref})
	if !ok {
		return fmt.Errorf("schema root %q not found", schema.Ref)
	}
	if missing := schema.missingKeys("", root, configMap); len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("keys not in schema: %s", strings.Join(missing, ", "))
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// resolve follows a local $ref to its definition
func (s schemaDoc) resolve(p schemaProperty) (schemaProperty, bool) {
	if p.Ref == "" {
		return p, true
	}
	def, ok := s.Defs[strings.TrimPrefix(p.Ref, "#/$defs/")]
	return def, ok
}

// missingKeys returns dotted paths of config keys absent from the schema node
func (s schemaDoc) missingKeys(prefix string, node schemaProperty, values map[string]any) []string {
	var res []string
	for key, val := range values {
		prop, ok := node.Properties[key]
		if !ok {
			res = append(res, prefix+key)
			continue
		}
		nested, isMap := val.(map[string]any)
		if !isMap {
			continue
		}
		resolved, ok := s.resolve(prop)
		if !ok {
			res = append(res, prefix+key)
			continue
		}
		res = append(res, s.missingKeys(prefix+key+".", resolved, nested)...)
	}
	return res
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.HN.BaseURL == "" {
		return fmt.Errorf("hn.base_url is required")
	}
	if cfg.Search.BaseURL == "" {
		return fmt.Errorf("search.base_url is required")
	}
	if cfg.Search.Query == "" {
		return fmt.Errorf("search.query is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}
