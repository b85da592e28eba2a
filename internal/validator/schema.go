package validator

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"qbank/internal/dataset"
	"qbank/internal/models"
)

//go:embed question_records.schema.json
var recordsSchema string

// SchemaLoadError represents errors loading or running the schema itself.
type SchemaLoadError struct {
	Cause error
	Name  string
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to validate %s against schema: %v", e.Name, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON checks an encoded records file against the record schema and,
// when the shape is right, against the record invariants.
func ValidateJSON(name string, data []byte) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(recordsSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &SchemaLoadError{Name: name, Cause: err}
	}

	res := newResult()

	if !result.Valid() {
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}

			res.add(ValidationError{
				Err:     ErrSchema,
				File:    name,
				Field:   field,
				Message: desc.Description(),
				Index:   -1,
			})
		}

		return res, nil
	}

	var records []models.QuestionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	res.merge(ValidateRecords(name, records))

	return res, nil
}

// ValidateDir validates technical.json and hr.json in a company directory.
func ValidateDir(dir string) (*ValidationResult, error) {
	paths := dataset.PathsFor(dir)
	res := newResult()

	for _, path := range []string{paths.Technical, paths.HR} {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		fileRes, err := ValidateJSON(path, data)
		if err != nil {
			return nil, err
		}

		res.merge(fileRes)
	}

	return res, nil
}
