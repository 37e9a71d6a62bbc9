package registry

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	apperrors "github.com/kalix127/inspira-ui/pkg/errors"
)

//go:embed registry.schema.json
var registrySchemaJSON string

//go:embed entry.schema.json
var entrySchemaJSON string

var (
	schemaOnce    sync.Once
	schemaOnceErr error
	itemSchema    *jsonschema.Schema
	entrySchema   *jsonschema.Schema
)

func compiledSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7

		if err := compiler.AddResource("registry.schema.json", strings.NewReader(registrySchemaJSON)); err != nil {
			schemaOnceErr = err
			return
		}
		if err := compiler.AddResource("entry.schema.json", strings.NewReader(entrySchemaJSON)); err != nil {
			schemaOnceErr = err
			return
		}

		items, err := compiler.Compile("registry.schema.json")
		if err != nil {
			schemaOnceErr = err
			return
		}
		entry, err := compiler.Compile("entry.schema.json")
		if err != nil {
			schemaOnceErr = err
			return
		}

		itemSchema = items
		entrySchema = entry
	})

	return itemSchema, entrySchema, schemaOnceErr
}

// ValidateItems checks the merged item list against the registry schema and
// the uniqueness invariant on names.
func ValidateItems(items []Item) error {
	schema, _, err := compiledSchemas()
	if err != nil {
		return apperrors.NewSchemaError("", "registry schema failed to compile", err)
	}

	if err := validateAgainst(schema, items); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if _, dup := seen[item.Name]; dup {
			return apperrors.NewSchemaError(fmt.Sprintf("/%d", i), fmt.Sprintf("duplicate item name %q", item.Name), nil)
		}
		seen[item.Name] = struct{}{}
	}

	return nil
}

// ValidateEntry checks a single style payload against the entry schema.
func ValidateEntry(payload any) error {
	_, schema, err := compiledSchemas()
	if err != nil {
		return apperrors.NewSchemaError("", "entry schema failed to compile", err)
	}
	return validateAgainst(schema, payload)
}

// validateAgainst round-trips the value through JSON so the schema library
// sees the exact document shape consumers will read.
func validateAgainst(schema *jsonschema.Schema, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewSchemaError("", "value is not serializable", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperrors.NewSchemaError("", "value is not valid JSON", err)
	}

	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := leafCause(ve)
			return apperrors.NewSchemaError(leaf.InstanceLocation, leaf.Message, err)
		}
		return apperrors.NewSchemaError("", err.Error(), err)
	}

	return nil
}

// leafCause walks to the most specific nested cause for a readable message.
func leafCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
