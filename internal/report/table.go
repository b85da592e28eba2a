// Package report renders run summaries and line traces as aligned text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth keeps the separator at least "---".
const minColumnWidth = 3

// Table is a pipe-delimited table aligned by display width.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends a row. Missing cells render empty; extra cells widen the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Lines renders the table, header and separator first.
func (t *Table) Lines() []string {
	table := make([][]string, 0, len(t.Rows)+1)
	table = append(table, t.Headers)

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			c = strings.TrimSpace(c)
			if t.MaxWidth > 0 {
				c = runewidth.Truncate(c, t.MaxWidth, "...")
			}

			cells[i] = c
		}

		table = append(table, cells)
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return nil
	}

	colWidths := make([]int, colCount)

	for _, row := range table {
		for i := 0; i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	result := make([]string, 0, len(table)+1)
	result = append(result, renderRow(table[0], colWidths))

	var sep strings.Builder

	sep.WriteString("|")

	for _, w := range colWidths {
		sep.WriteString(" ")
		sep.WriteString(strings.Repeat("-", w))
		sep.WriteString(" |")
	}

	result = append(result, sep.String())

	for _, row := range table[1:] {
		result = append(result, renderRow(row, colWidths))
	}

	return result
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) error {
	for _, line := range t.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
