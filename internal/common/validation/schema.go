// Package validation checks vendor structured-output JSON against the shapes
// the proxy contract promises before any of it reaches a caller.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// InsightListSchema constrains a decoded insight list: every element carries
// the four fields and type is one of the five allowed values.
var InsightListSchema = map[string]interface{}{
	"type": "array",
	"items": map[string]interface{}{
		"type":     "object",
		"required": []string{"type", "title", "description", "prompt"},
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type": "string",
				"enum": []string{"Upsell", "Risk", "Promotion", "Performance", "Opportunity"},
			},
			"title":       map[string]interface{}{"type": "string"},
			"description": map[string]interface{}{"type": "string"},
			"prompt":      map[string]interface{}{"type": "string"},
		},
	},
}

// MeetingNotesSchema requires all four note sections to be present strings.
var MeetingNotesSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"customerInfo", "analyzePerformance", "setObjectives", "prepareMaterials"},
	"properties": map[string]interface{}{
		"customerInfo":       map[string]interface{}{"type": "string"},
		"analyzePerformance": map[string]interface{}{"type": "string"},
		"setObjectives":      map[string]interface{}{"type": "string"},
		"prepareMaterials":   map[string]interface{}{"type": "string"},
	},
}

// ValidateJSON validates raw vendor JSON against a schema.
func ValidateJSON(schema map[string]interface{}, raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("response validation failed: %v", errs)
	}

	return nil
}
