// Package models defines data structures for the classifier and writer.
package models

// IdealAnswerPlaceholder is written into every record's ideal_answer field.
const IdealAnswerPlaceholder = "Explain fully. Focus on key concepts."

// Section is the category context a question line is routed to.
type Section int

// Sections.
const (
	SectionNone Section = iota
	SectionTechnical
	SectionHR
)

// String returns the section name.
func (s Section) String() string {
	switch s {
	case SectionTechnical:
		return "TECHNICAL"
	case SectionHR:
		return "HR"
	default:
		return "NONE"
	}
}

// QuestionRecord is one extracted interview question.
type QuestionRecord struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Keywords    []string `json:"keywords"`
	IdealAnswer string   `json:"ideal_answer"`
}

// Dataset holds the classified questions of one company.
type Dataset struct {
	Technical []QuestionRecord `json:"technical"`
	HR        []QuestionRecord `json:"hr"`
}

// NewDataset returns a dataset whose sequences encode as empty JSON arrays.
func NewDataset() *Dataset {
	return &Dataset{
		Technical: []QuestionRecord{},
		HR:        []QuestionRecord{},
	}
}

// Records returns the sequence for a section, or nil for SectionNone.
func (d *Dataset) Records(s Section) []QuestionRecord {
	switch s {
	case SectionTechnical:
		return d.Technical
	case SectionHR:
		return d.HR
	default:
		return nil
	}
}

// Append adds a record to the sequence for s. Records for SectionNone are ignored.
func (d *Dataset) Append(s Section, rec QuestionRecord) {
	switch s {
	case SectionTechnical:
		d.Technical = append(d.Technical, rec)
	case SectionHR:
		d.HR = append(d.HR, rec)
	}
}
