package questionbank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

var idType = []any{"string", "integer"}

// BankSchema describes the question-bank provider's payload.
var BankSchema = &Schema{
	Name: "question-bank",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tipo": map[string]any{"type": "string", "minLength": 1},
			"rol":  map[string]any{"type": "string"},
			"secciones": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": idType},
						"nombre":      map[string]any{"type": "string", "minLength": 1},
						"ponderacion": map[string]any{"type": []any{"number", "string", "null"}},
						"preguntas": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":                 map[string]any{"type": idType},
									"pregunta":           map[string]any{"type": "string", "minLength": 1},
									"tipo_pregunta":      map[string]any{"type": "string"},
									"es_trampa":          map[string]any{"type": []any{"boolean", "integer", "string", "null"}},
									"opcion_a":           map[string]any{"type": []any{"string", "null"}},
									"opcion_b":           map[string]any{"type": []any{"string", "null"}},
									"opcion_c":           map[string]any{"type": []any{"string", "null"}},
									"respuesta_correcta": map[string]any{"type": []any{"string", "null"}},
								},
								"required": []any{"pregunta"},
							},
						},
					},
					"required": []any{"nombre", "preguntas"},
				},
			},
		},
		"required": []any{"tipo", "secciones"},
	},
}

// AnswerSheetSchema describes a submitted answer sheet.
var AnswerSheetSchema = &Schema{
	Name: "answer-sheet",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rol": map[string]any{"type": "string"},
			"respuestas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"rol":       map[string]any{"type": "string"},
						"seccion":   map[string]any{"type": "integer"},
						"pregunta":  map[string]any{"type": "integer"},
						"respuesta": map[string]any{"type": "string"},
					},
					"required": []any{"seccion", "pregunta", "respuesta"},
				},
			},
		},
		"required": []any{"respuestas"},
	},
}

// schemaCache holds one compiled schema per Schema.Name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validate checks raw JSON against schema.
func validate(schema *Schema, raw []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema compiles schema on first use. Definitions are written as Go
// maps, so they are encoded once and decoded with the library's own JSON
// reader, which keeps numbers as json.Number.
func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := schemaCache.Load(schema.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode %s definition: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s definition: %w", schema.Name, err)
	}

	loc := "mem://questionbank/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(loc, doc); err != nil {
		return nil, fmt.Errorf("register %s: %w", loc, err)
	}
	sch, err := c.Compile(loc)
	if err != nil {
		return nil, err
	}

	v, _ := schemaCache.LoadOrStore(schema.Name, sch)
	return v.(*jsonschema.Schema), nil
}
