package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var schema *gojsonschema.Schema

func init() {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("model: embedded resume schema does not compile: %v", err))
	}
	schema = s
}

// FieldError is a single violated rule, addressed by dotted/indexed
// path, e.g. "experience.0.company".
type FieldError struct {
	Path    string `json:"fieldPath"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Path+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// ParseError marks input that is not syntactically valid JSON. Distinct
// from ValidationError: no field list exists for unparseable input.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "invalid JSON: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// Validate checks a raw JSON document against the resume schema and
// decodes it on success. Unknown top-level keys are ignored. Malformed
// JSON yields *ParseError; a well-formed document that breaks schema
// rules yields *ValidationError with one entry per violation.
func Validate(raw []byte) (*Resume, error) {
	if !json.Valid(raw) {
		var probe any
		return nil, &ParseError{Err: json.Unmarshal(raw, &probe)}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if !result.Valid() {
		ve := &ValidationError{}
		for _, e := range result.Errors() {
			ve.Fields = append(ve.Fields, FieldError{Path: e.Field(), Message: e.Description()})
		}
		return nil, ve
	}

	var r Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &r, nil
}

// ValidateResume runs the schema gate over an in-memory record. Used by
// the editor on submit; import paths go through Validate directly.
func ValidateResume(r *Resume) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return &ParseError{Err: err}
	}
	_, err = Validate(raw)
	return err
}
