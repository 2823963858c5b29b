package standard

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

// fileSchema validates user-supplied standard files before they are
// converted into Standard values. Sections may be plain names or full
// objects with aliases.
const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "sections"],
  "additionalProperties": false,
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1},
    "min_length": {"type": "integer", "minimum": 0},
    "structured": {"type": "boolean"},
    "sections": {
      "type": "array",
      "minItems": 1,
      "items": {
        "oneOf": [
          {"type": "string", "minLength": 1},
          {
            "type": "object",
            "required": ["name"],
            "additionalProperties": false,
            "properties": {
              "name": {"type": "string", "minLength": 1},
              "aliases": {"type": "array", "items": {"type": "string"}},
              "required": {"type": "boolean"}
            }
          }
        ]
      }
    }
  }
}`

type standardFile struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	MinLength  int               `json:"min_length"`
	Structured bool              `json:"structured"`
	Sections   []json.RawMessage `json:"sections"`
}

// LoadFile reads a JSON standard definition, validates it against the
// standard-file schema, and converts it into a Standard. The returned
// value is not registered; callers pass it to Registry.Register.
func LoadFile(path string) (*Standard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading standard file: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(fileSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validating standard file %q: %w", path, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		return nil, fmt.Errorf("invalid standard file %q: %s", path, strings.Join(msgs, "; "))
	}

	var sf standardFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing standard file %q: %w", path, err)
	}

	sections := make([]SectionSpec, 0, len(sf.Sections))
	for i, raw := range sf.Sections {
		spec, err := parseSection(raw)
		if err != nil {
			return nil, fmt.Errorf("standard file %q section[%d]: %w", path, i, err)
		}
		sections = append(sections, spec)
	}

	id := sf.ID
	if id == "" {
		id = "custom-" + uuid.NewString()
	}
	minLength := sf.MinLength
	if minLength <= 0 {
		minLength = customMinLength
	}

	return &Standard{
		ID:          id,
		DisplayName: sf.Name,
		Sections:    sections,
		MinLength:   minLength,
		Structured:  sf.Structured,
	}, nil
}

// parseSection accepts either a bare section name or a full spec object.
// A bare name and an object without "required" both default to required.
func parseSection(raw json.RawMessage) (SectionSpec, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return SectionSpec{Name: name, Required: true}, nil
	}

	var obj struct {
		Name     string   `json:"name"`
		Aliases  []string `json:"aliases"`
		Required *bool    `json:"required"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return SectionSpec{}, fmt.Errorf("parsing section: %w", err)
	}
	required := true
	if obj.Required != nil {
		required = *obj.Required
	}
	return SectionSpec{Name: obj.Name, Aliases: obj.Aliases, Required: required}, nil
}
