package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema defines the JSON schema for the vocabulary whitelist source.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"sections": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    map[string]any{"type": "string", "minLength": 1},
					"title": map[string]any{"type": "string", "minLength": 1},
					"items": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":           map[string]any{"type": "string", "minLength": 1},
								"word_nl":      map[string]any{"type": "string", "minLength": 1},
								"word_en":      map[string]any{"type": "string", "minLength": 1},
								"image_prompt": map[string]any{"type": "string"},
							},
							"required": []any{"id", "word_nl", "word_en"},
						},
					},
				},
				"required": []any{"id", "title", "items"},
			},
		},
	},
	"required": []any{"sections"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getCompiledSchema compiles the document schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://whitelist-vocab.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument checks raw JSON against the whitelist schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile whitelist schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
