package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// exportRequestSchema constrains the export payload shape. Property fields
// are all optional strings; unknown keys are ignored so older clients keep
// working.
const exportRequestSchema = `{
	"type": "object",
	"properties": {
		"filename": {"type": "string"},
		"format": {"type": "string", "enum": ["csv", "xlsx"]},
		"properties": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "string"},
					"address": {"type": "string"},
					"district": {"type": "string"},
					"type": {"type": "string"},
					"price": {"type": "string"},
					"original_price": {"type": "string"},
					"owner": {"type": "string"},
					"representative": {"type": "string"},
					"broker_name": {"type": "string"},
					"broker_phone": {"type": "string"},
					"broker_email": {"type": "string"},
					"city": {"type": "string"},
					"street": {"type": "string"}
				}
			}
		}
	},
	"required": ["properties"]
}`

// ValidateExportRequest checks a decoded export payload against the schema
// before any encoding work happens.
func ValidateExportRequest(payload interface{}) error {
	schemaLoader := gojsonschema.NewStringLoader(exportRequestSchema)
	documentLoader := gojsonschema.NewGoLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("invalid export request: %s", strings.Join(details, "; "))
	}

	return nil
}
