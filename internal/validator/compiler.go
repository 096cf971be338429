// Package validator compiles JSON Schemas and validates decoded documents against them.
package validator

// Draft represents a JSON Schema draft version.
type Draft string

// Draft2020_12 represents JSON Schema Draft 2020-12, the dialect pathy's own schemas use.
const Draft2020_12 Draft = "https://json-schema.org/draft/2020-12/schema"

// A JSONDocument is a decoded JSON value as produced by ParseJSON.
type JSONDocument interface{}

// A JSONSchema is a decoded JSON document describing a schema. It must be
// compiled before use.
type JSONSchema JSONDocument

// Validator validates a JSON document.
type Validator interface {
	Validate(v JSONDocument) error
}

// Compiler registers schema resources and compiles them into Validators.
type Compiler interface {
	// AddSchema registers a schema under id. Referenced schemas must be added first.
	AddSchema(id string, data JSONSchema) error

	// Compile creates a Validator from the schema previously added under id.
	Compile(id string) (Validator, error)

	// Clear removes every registered schema.
	Clear()
}
