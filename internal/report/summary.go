package report

import (
	"strconv"

	"qbank/internal/models"
	"qbank/pkg/checksum"
)

// CompanyRow is one line of the run summary.
type CompanyRow struct {
	Company     string
	InputDigest string
	Technical   int
	HR          int
}

// Summary builds the end-of-run table.
func Summary(rows []CompanyRow) *Table {
	t := NewTable("Company", "Technical", "HR", "Input")

	totalTech, totalHR := 0, 0

	for _, r := range rows {
		t.AddRow(r.Company, strconv.Itoa(r.Technical), strconv.Itoa(r.HR), checksum.Short(r.InputDigest))

		totalTech += r.Technical
		totalHR += r.HR
	}

	if len(rows) > 1 {
		t.AddRow("Total", strconv.Itoa(totalTech), strconv.Itoa(totalHR), "")
	}

	return t
}

// traceTextWidth caps the text column of a trace.
const traceTextWidth = 60

// Trace builds a per-line decision table. Blank lines are skipped unless withBlank is set.
func Trace(decisions []models.Decision, withBlank bool) *Table {
	t := NewTable("Line", "Kind", "Section", "Reason", "Text")
	t.MaxWidth = traceTextWidth

	for _, d := range decisions {
		if d.Kind == models.LineBlank && !withBlank {
			continue
		}

		t.AddRow(strconv.Itoa(d.Line), d.Kind.String(), d.Section.String(), d.Reason, d.Text)
	}

	return t
}
