// Package validator checks question datasets before and after they are written.
package validator

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"qbank/internal/models"
)

// Validation errors.
var (
	ErrNonContiguousID  = errors.New("ids must be contiguous starting at 1")
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrUntrimmed        = errors.New("question has surrounding whitespace")
	ErrWrongPlaceholder = errors.New("ideal_answer is not the placeholder text")
	ErrNilKeywords      = errors.New("keywords must be an array")
	ErrSchema           = errors.New("document does not match the record schema")
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Err     error
	File    string
	Field   string
	Value   string
	Message string
	Index   int
}

// ValidationResult contains validation results for one or more files.
type ValidationResult struct {
	Errors  []ValidationError
	Records int
	IsValid bool
}

func newResult() *ValidationResult {
	return &ValidationResult{IsValid: true}
}

func (r *ValidationResult) add(e ValidationError) {
	r.Errors = append(r.Errors, e)
	r.IsValid = false
}

func (r *ValidationResult) merge(other *ValidationResult) {
	r.Records += other.Records

	for _, e := range other.Errors {
		r.add(e)
	}
}

// Err returns the first error, wrapped with its location, or nil.
func (r *ValidationResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	first := r.Errors[0]
	if first.Index < 0 {
		return fmt.Errorf("%s %s: %w", first.File, first.Field, first.Err)
	}

	return fmt.Errorf("%s[%d]: %w", first.File, first.Index, first.Err)
}

// String returns a one-line summary.
func (r *ValidationResult) String() string {
	return fmt.Sprintf("ValidationResult{Valid: %v, Records: %d, Errors: %d}", r.IsValid, r.Records, len(r.Errors))
}

// PrintErrors writes errors to w, one per line.
func (r *ValidationResult) PrintErrors(w io.Writer) {
	if len(r.Errors) == 0 {
		return
	}

	fmt.Fprintln(w, "❌ Validation Errors:")

	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s", e.File)

		if e.Index >= 0 {
			fmt.Fprintf(w, "[%d]", e.Index)
		}

		if e.Field != "" {
			fmt.Fprintf(w, " [%s]", e.Field)
		}

		fmt.Fprintf(w, ": %s\n", e.Message)

		if e.Value != "" {
			fmt.Fprintf(w, "    Found: %q\n", e.Value)
		}
	}
}

// ValidateRecords checks the invariants of one category's records.
// name labels the errors (usually the file name).
func ValidateRecords(name string, records []models.QuestionRecord) *ValidationResult {
	res := newResult()
	res.Records = len(records)

	for i, rec := range records {
		fail := func(err error, field, value string) {
			res.add(ValidationError{Err: err, File: name, Index: i, Field: field, Value: value, Message: err.Error()})
		}

		if rec.ID != i+1 {
			fail(ErrNonContiguousID, "id", fmt.Sprint(rec.ID))
		}

		switch {
		case rec.Question == "":
			fail(ErrEmptyQuestion, "question", "")
		case strings.TrimSpace(rec.Question) != rec.Question:
			fail(ErrUntrimmed, "question", rec.Question)
		}

		if rec.Keywords == nil {
			fail(ErrNilKeywords, "keywords", "")
		}

		if rec.IdealAnswer != models.IdealAnswerPlaceholder {
			fail(ErrWrongPlaceholder, "ideal_answer", rec.IdealAnswer)
		}
	}

	return res
}

// ValidateDataset checks both categories of a dataset.
func ValidateDataset(ds *models.Dataset) *ValidationResult {
	res := newResult()
	res.merge(ValidateRecords("technical", ds.Technical))
	res.merge(ValidateRecords("hr", ds.HR))

	return res
}
