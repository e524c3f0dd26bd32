package course

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/stdexam/internal/apperr"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://course.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// Load reads a YAML course file. Keys absent from the file keep their
// DefaultCourse values.
func Load(path string) (Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Course{}, &apperr.IOError{Op: "read", Path: path, Err: err}
	}
	c, err := Parse(data)
	if err != nil {
		return Course{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML course data.
func Parse(data []byte) (Course, error) {
	if err := validateDocument(data); err != nil {
		return Course{}, err
	}

	c := DefaultCourse()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Course{}, fmt.Errorf("decode course: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Course{}, err
	}
	return c, nil
}

// validateDocument checks the raw YAML against the embedded schema.
func validateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The schema validator expects JSON values; round-trip through JSON to
	// turn YAML ints and maps into that form.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert course to JSON: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("convert course to JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile course schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("course schema validation failed: %w", err)
	}
	return nil
}
