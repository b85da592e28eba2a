// Package dataset persists classified question records as JSON files.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"qbank/internal/models"
)

// Output file names inside a company directory.
const (
	TechnicalFile = "technical.json"
	HRFile        = "hr.json"
)

// DefaultIndent is the number of spaces per JSON nesting level.
const DefaultIndent = 4

// Writer writes a company dataset into a directory.
type Writer struct {
	indent string
}

// NewWriter creates a writer using indent spaces per level.
func NewWriter(indent int) *Writer {
	if indent < 0 {
		indent = DefaultIndent
	}

	return &Writer{indent: strings.Repeat(" ", indent)}
}

// Paths lists the files produced for one directory.
type Paths struct {
	Technical string
	HR        string
}

// PathsFor returns the output file paths for dir.
func PathsFor(dir string) Paths {
	return Paths{
		Technical: filepath.Join(dir, TechnicalFile),
		HR:        filepath.Join(dir, HRFile),
	}
}

// Encode renders records as an indented JSON array without HTML escaping
// or a trailing newline. A nil slice encodes as [].
func (w *Writer) Encode(records []models.QuestionRecord) ([]byte, error) {
	if records == nil {
		records = []models.QuestionRecord{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", w.indent)

	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write creates dir if needed and overwrites technical.json then hr.json.
func (w *Writer) Write(dir string, ds *models.Dataset) (Paths, error) {
	paths := PathsFor(dir)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return paths, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	if err := w.writeFile(paths.Technical, ds.Technical); err != nil {
		return paths, err
	}

	if err := w.writeFile(paths.HR, ds.HR); err != nil {
		return paths, err
	}

	return paths, nil
}

func (w *Writer) writeFile(path string, records []models.QuestionRecord) error {
	data, err := w.Encode(records)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Read loads both files of a company directory.
func Read(dir string) (*models.Dataset, error) {
	paths := PathsFor(dir)
	ds := models.NewDataset()

	if err := readFile(paths.Technical, &ds.Technical); err != nil {
		return nil, err
	}

	if err := readFile(paths.HR, &ds.HR); err != nil {
		return nil, err
	}

	return ds, nil
}

func readFile(path string, out *[]models.QuestionRecord) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}
