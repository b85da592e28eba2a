package report

import (
	"bytes"
	"strings"
	"testing"

	"qbank/internal/models"
)

func TestTable_Lines(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		rows     [][]string
		expected string
	}{
		{
			name:    "Basic alignment",
			headers: []string{"Company", "HR"},
			rows:    [][]string{{"TCS", "12"}},
			expected: `
| Company | HR  |
| ------- | --- |
| TCS     | 12  |
`,
		},
		{
			name:    "Trim spaces in cells",
			headers: []string{"A", "B"},
			rows:    [][]string{{"  val A  ", " val B "}},
			expected: `
| A     | B     |
| ----- | ----- |
| val A | val B |
`,
		},
		{
			name:    "Missing cells",
			headers: []string{"A", "B", "C"},
			rows:    [][]string{{"x"}},
			expected: `
| A   | B   | C   |
| --- | --- | --- |
| x   |     |     |
`,
		},
		{
			name:    "Mixed CJK and ASCII",
			headers: []string{"Company", "Technical"},
			rows:    [][]string{{"塔塔咨询", "3"}, {"Infosys", "10"}},
			// 塔塔咨询 is 4 wide characters, display width 8.
			expected: `
| Company  | Technical |
| -------- | --------- |
| 塔塔咨询 | 3         |
| Infosys  | 10        |
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.headers...)
			for _, r := range tt.rows {
				table.AddRow(r...)
			}

			got := strings.Join(table.Lines(), "\n")
			if got != strings.TrimSpace(tt.expected) {
				t.Errorf("Lines() = \n%v\nwant \n%v", got, strings.TrimSpace(tt.expected))
			}
		})
	}
}

func TestTable_Empty(t *testing.T) {
	if lines := NewTable().Lines(); lines != nil {
		t.Errorf("Lines() of empty table = %v, want nil", lines)
	}
}

func TestSummary_Total(t *testing.T) {
	var buf bytes.Buffer

	table := Summary([]CompanyRow{
		{Company: "Infosys", Technical: 3, HR: 2, InputDigest: "0123456789abcdef"},
		{Company: "TCS", Technical: 1, HR: 4, InputDigest: "missing"},
	})

	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "| Total   | 4         | 6   |") {
		t.Errorf("missing total row:\n%s", out)
	}

	if !strings.Contains(out, "0123456789ab ") {
		t.Errorf("digest not shortened:\n%s", out)
	}
}

func TestTrace_SkipsBlank(t *testing.T) {
	decisions := []models.Decision{
		{Line: 1, Kind: models.LineHeader, Section: models.SectionTechnical, Text: "CORE TECHNICAL", Reason: "core-technical"},
		{Line: 2, Kind: models.LineBlank},
		{Line: 3, Kind: models.LineQuestion, Section: models.SectionTechnical, Text: strings.Repeat("x", 80)},
	}

	lines := Trace(decisions, false).Lines()
	if len(lines) != 4 {
		t.Fatalf("Trace() rendered %d lines, want 4", len(lines))
	}

	if !strings.Contains(lines[3], "...") {
		t.Errorf("long text not truncated: %s", lines[3])
	}

	if len(Trace(decisions, true).Lines()) != 5 {
		t.Error("Trace(withBlank) should keep blank lines")
	}
}
