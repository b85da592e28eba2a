package models

// LineKind describes what the classifier did with one input line.
type LineKind int

// Line kinds.
const (
	LineBlank LineKind = iota
	LineHeader
	LineNoise
	LineQuestion
	LineOrphan
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeader:
		return "header"
	case LineNoise:
		return "noise"
	case LineQuestion:
		return "question"
	case LineOrphan:
		return "orphan"
	default:
		return "unknown"
	}
}

// Decision records the outcome for a single line.
// Line is 1-based. Section is the state after the line was consumed.
type Decision struct {
	Text    string
	Reason  string
	Line    int
	Kind    LineKind
	Section Section
}

// Stats counts decisions by kind.
type Stats struct {
	Lines     int
	Blank     int
	Headers   int
	Noise     int
	Questions int
	Orphans   int
}

// Add counts one decision.
func (s *Stats) Add(d Decision) {
	s.Lines++

	switch d.Kind {
	case LineBlank:
		s.Blank++
	case LineHeader:
		s.Headers++
	case LineNoise:
		s.Noise++
	case LineQuestion:
		s.Questions++
	case LineOrphan:
		s.Orphans++
	}
}

// Company identifies one dataset to build.
type Company struct {
	Name      string
	Input     string
	OutputDir string
}
