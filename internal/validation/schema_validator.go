package validation

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questResultSchema is the contract every generation result must satisfy
// before it reaches a caller. Both objects and all of their string fields are
// required and non-empty; extra fields are rejected so prompt drift surfaces
// as a schema failure instead of silently passing through.
const questResultSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["quest", "insight"],
  "additionalProperties": false,
  "properties": {
    "quest": {
      "type": "object",
      "required": [
        "emotion", "class", "realm", "realm_description",
        "item", "item_effect", "quest", "transformation"
      ],
      "additionalProperties": false,
      "properties": {
        "emotion":           {"type": "string", "minLength": 1},
        "class":             {"type": "string", "minLength": 1},
        "realm":             {"type": "string", "minLength": 1},
        "realm_description": {"type": "string", "minLength": 1},
        "item":              {"type": "string", "minLength": 1},
        "item_effect":       {"type": "string", "minLength": 1},
        "quest":             {"type": "string", "minLength": 1},
        "transformation":    {"type": "string", "minLength": 1}
      }
    },
    "insight": {
      "type": "object",
      "required": ["summary", "growth_advice", "emotional_pattern"],
      "additionalProperties": false,
      "properties": {
        "summary":           {"type": "string", "minLength": 1},
        "growth_advice":     {"type": "string", "minLength": 1},
        "emotional_pattern": {"type": "string", "minLength": 1}
      }
    }
  }
}`

const questResultSchemaName = "quest_result.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// QuestResultSchema returns the compiled quest result schema. Compilation
// happens once; a compile failure is a programming error surfaced to every
// caller.
func QuestResultSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questResultSchema))
		if err != nil {
			compileErr = fmt.Errorf("failed to parse quest result schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(questResultSchemaName, doc); err != nil {
			compileErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		compiledSchema, compileErr = compiler.Compile(questResultSchemaName)
	})
	return compiledSchema, compileErr
}

// ValidateQuestResult checks raw JSON bytes against the quest result schema.
func ValidateQuestResult(data []byte) error {
	schema, err := QuestResultSchema()
	if err != nil {
		return err
	}

	jsonData, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError flattens nested causes into one readable message
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}

	var msgs []string
	collectErrors(validationErr, &msgs)
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// collectErrors recursively collects leaf validation errors
func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		*msgs = append(*msgs, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("at %s: validation failed", location)
}
