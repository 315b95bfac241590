// Package schemas pins the emitted report shape with JSON Schema validation.
package schemas

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError is a single validation error at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every field that failed validation.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateBytes validates a JSON document against the schema file at
// schemaPath. Returns *ValidationError when the document is well-formed JSON
// but violates the schema.
func ValidateBytes(schemaPath string, doc []byte) error {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + absPath)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", absPath, err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
