// Package classifier turns raw interview question dumps into technical and HR question records.
package classifier

import (
	"errors"
	"fmt"
	"strings"

	"qbank/internal/models"
)

// ErrQuestionBeforeHeader is returned in strict mode for a question seen before any section header.
var ErrQuestionBeforeHeader = errors.New("question before any section header")

// LineError attaches a 1-based line number to a classification error.
type LineError struct {
	Err  error
	Text string
	Line int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Options configures a Classifier. The zero value reproduces the legacy output.
type Options struct {
	Subheader      SubheaderPredicate
	ExtraHeaders   []HeaderRule
	KeywordMode    KeywordMode
	MinKeywordLen  int
	StrictSections bool
}

// Classifier holds immutable rules; all parse state lives in Classify.
type Classifier struct {
	subheader SubheaderPredicate
	keywords  *KeywordExtractor
	headers   []HeaderRule
	strict    bool
}

// Result is the output of one classification.
type Result struct {
	Dataset   *models.Dataset
	Decisions []models.Decision
	Stats     models.Stats
}

// state is the per-file parse state threaded through step.
type state struct {
	section       models.Section
	nextTechnical int
	nextHR        int
}

func newState() state {
	return state{section: models.SectionNone, nextTechnical: 1, nextHR: 1}
}

// New creates a classifier.
func New(opts Options) *Classifier {
	sub := opts.Subheader
	if sub == nil {
		sub = NonASCII{}
	}

	headers := DefaultHeaderRules()
	headers = append(headers, opts.ExtraHeaders...)

	return &Classifier{
		subheader: sub,
		keywords:  NewKeywordExtractor(opts.KeywordMode, opts.MinKeywordLen),
		headers:   headers,
		strict:    opts.StrictSections,
	}
}

// SplitLines splits text on \n, \r\n and lone \r. A final line terminator
// does not produce a trailing empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}

// ClassifyText classifies the lines of text.
func (c *Classifier) ClassifyText(text string) (*Result, error) {
	return c.Classify(SplitLines(text))
}

// Classify runs a single pass over lines.
func (c *Classifier) Classify(lines []string) (*Result, error) {
	res := &Result{
		Dataset:   models.NewDataset(),
		Decisions: make([]models.Decision, 0, len(lines)),
	}

	st := newState()

	for i, raw := range lines {
		next, decision, rec, err := c.step(st, i+1, raw)
		if err != nil {
			return nil, err
		}

		st = next

		res.Decisions = append(res.Decisions, decision)
		res.Stats.Add(decision)

		if rec != nil {
			res.Dataset.Append(decision.Section, *rec)
		}
	}

	return res, nil
}

// step classifies one line given the current state and returns the next state.
func (c *Classifier) step(st state, n int, raw string) (state, models.Decision, *models.QuestionRecord, error) {
	line := strings.TrimSpace(raw)
	d := models.Decision{Line: n, Text: line, Section: st.section}

	if line == "" {
		d.Kind = models.LineBlank
		return st, d, nil, nil
	}

	for _, h := range c.headers {
		if h.Match(line) {
			st.section = h.Section
			d.Kind = models.LineHeader
			d.Section = h.Section
			d.Reason = h.Name

			return st, d, nil, nil
		}
	}

	if reason := noiseReason(line, c.subheader); reason != "" {
		d.Kind = models.LineNoise
		d.Reason = reason

		return st, d, nil, nil
	}

	rec := &models.QuestionRecord{
		Question:    line,
		Keywords:    c.keywords.Extract(line),
		IdealAnswer: models.IdealAnswerPlaceholder,
	}

	switch st.section {
	case models.SectionTechnical:
		rec.ID = st.nextTechnical
		st.nextTechnical++
	case models.SectionHR:
		rec.ID = st.nextHR
		st.nextHR++
	default:
		if c.strict {
			return st, d, nil, &LineError{Err: ErrQuestionBeforeHeader, Line: n, Text: line}
		}

		d.Kind = models.LineOrphan
		d.Reason = "no section header yet"

		return st, d, nil, nil
	}

	d.Kind = models.LineQuestion

	return st, d, rec, nil
}
