package llm

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// keywordSetSchema validates the shape of the extraction response before it
// is unmarshalled. Categories the model omits are allowed; wrong types are not.
const keywordSetSchema = `{
	"type": "object",
	"properties": {
		"keywords":                {"type": "array", "items": {"type": "string"}},
		"skills":                  {"type": "array", "items": {"type": "string"}},
		"technologies":            {"type": "array", "items": {"type": "string"}},
		"soft_skills":             {"type": "array", "items": {"type": "string"}},
		"experience_requirements": {"type": "array", "items": {"type": "string"}},
		"action_verbs":            {"type": "array", "items": {"type": "string"}},
		"methodologies":           {"type": "array", "items": {"type": "string"}}
	}
}`

// validateKeywordPayload validates raw JSON against the keyword set schema.
func validateKeywordPayload(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(keywordSetSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("extraction payload does not match schema:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
