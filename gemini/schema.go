package gemini

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/jamshu/librarium/library"
)

// reflector inlines all definitions: the Gemini responseSchema field does
// not resolve $ref.
var reflector = &jsonschema.Reflector{
	DoNotReference: true,
}

// librarySchema builds the JSON response schema for library generation from
// the domain types' jsonschema tags.
func librarySchema() (any, error) {
	s := reflector.Reflect(&library.Library{})
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, err
	}

	// Gemini rejects JSON Schema metadata keywords.
	delete(schema, "$schema")
	delete(schema, "$id")
	return schema, nil
}
