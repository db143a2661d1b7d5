package task

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"taskdev/internal/utils"
)

// ValidationError is a schema or parse error with document context.
type ValidationError struct {
	Path string // dotted field path inside the front matter, if known
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Result holds the outcome of validating one document.
type Result struct {
	Valid  bool
	Errors []error
}

// Validator validates task front matter against a compiled JSON schema.
// The schema is compiled once and reused for every document in a run.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the draft-07 schema at schemaPath.
func NewValidator(schemaPath string) (*Validator, error) {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("resolving schema path: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	compiler.AssertFormat = true

	schema, err := compiler.Compile(abs)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", abs, err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateDocument splits a document's front matter, parses it as YAML,
// and validates it against the schema. Parse failures and schema
// violations are recorded in the result; ErrNoFrontMatter passes
// through so callers can treat it as a skip.
func (v *Validator) ValidateDocument(content string) (*Result, error) {
	front, _, err := SplitFrontMatter(content)
	if err != nil {
		if err == ErrNoFrontMatter {
			return nil, err
		}
		return &Result{Valid: false, Errors: []error{err}}, nil
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(front), &doc); err != nil {
		return &Result{Valid: false, Errors: []error{fmt.Errorf("parse front matter: %w", err)}}, nil
	}

	return v.validate(doc), nil
}

// validate runs the compiled schema over a decoded front-matter object.
// The object round-trips through JSON so the schema library sees the
// value types it expects.
func (v *Validator) validate(doc map[string]interface{}) *Result {
	result := &Result{Valid: true}

	data, err := json.Marshal(doc)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("encoding front matter for validation: %w", err))
		return result
	}
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("decoding front matter for validation: %w", err))
		return result
	}

	if err := v.schema.Validate(obj); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

// appendSchemaErrors flattens a jsonschema validation error tree into
// per-field ValidationError entries.
func appendSchemaErrors(result *Result, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectCauses(result, ve)
}

func collectCauses(result *Result, ve *jsonschema.ValidationError) {
	if ve == nil {
		return
	}
	if len(ve.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(ve.InstanceLocation),
			Err:  fmt.Errorf("%s", ve.Message),
		})
		return
	}
	for _, cause := range ve.Causes {
		collectCauses(result, cause)
	}
}
