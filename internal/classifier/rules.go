package classifier

import (
	"strings"
	"unicode/utf8"

	"qbank/internal/models"
)

// checkmarkGlyph prefixes redundant top-level header lines.
const checkmarkGlyph = "✅"

// HeaderRule switches the current section when a line contains every
// substring in All and, if Any is non-empty, at least one substring in Any.
type HeaderRule struct {
	Name    string
	All     []string
	Any     []string
	Section models.Section
}

// Match reports whether line satisfies the rule.
func (r HeaderRule) Match(line string) bool {
	for _, s := range r.All {
		if !strings.Contains(line, s) {
			return false
		}
	}

	if len(r.Any) == 0 {
		return true
	}

	for _, s := range r.Any {
		if strings.Contains(line, s) {
			return true
		}
	}

	return false
}

// DefaultHeaderRules returns the built-in section headers, in match order.
func DefaultHeaderRules() []HeaderRule {
	return []HeaderRule{
		{Name: "core-technical", All: []string{"CORE TECHNICAL"}, Section: models.SectionTechnical},
		{Name: "company-hr", All: []string{"HR"}, Any: []string{"Infosys", "TCS"}, Section: models.SectionHR},
		{Name: "managerial-round", All: []string{"Managerial Round"}, Section: models.SectionHR},
	}
}

// SubheaderPredicate decides whether a line is a decorative subheader.
type SubheaderPredicate interface {
	IsSubheader(line string) bool
	Name() string
}

// NonASCII treats any line containing a code point above 127 as a subheader.
type NonASCII struct{}

// IsSubheader implements SubheaderPredicate.
func (NonASCII) IsSubheader(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] >= utf8.RuneSelf {
			return true
		}
	}

	return false
}

// Name implements SubheaderPredicate.
func (NonASCII) Name() string { return "non_ascii" }

// LeadingGlyph treats a line as a subheader only when it starts with one of Glyphs.
type LeadingGlyph struct {
	Glyphs []string
}

// DefaultSubheaderGlyphs lists decorative glyphs seen at the start of subheaders.
func DefaultSubheaderGlyphs() []string {
	return []string{
		"\U0001F9E0", // 🧠
		"\U0001F4BB", // 💻
		"\U0001F5C4", // 🗄
		"\U0001F310", // 🌐
		"\u2699",     // ⚙
		"\U0001F4CA", // 📊
		"\U0001F510", // 🔐
		"\U0001F9E9", // 🧩
		"\U0001F4AC", // 💬
		"\U0001F91D", // 🤝
		"\U0001F454", // 👔
		"\U0001F4CC", // 📌
		"\U0001F539", // 🔹
		"\U0001F538", // 🔸
		"\u2B50",     // ⭐
		"\U0001F3AF", // 🎯
		"\U0001F4A1", // 💡
		"\U0001F6E0", // 🛠
		"\U0001F9EA", // 🧪
		"\u25B6",     // ▶
	}
}

// IsSubheader implements SubheaderPredicate.
func (p LeadingGlyph) IsSubheader(line string) bool {
	for _, g := range p.Glyphs {
		if g != "" && strings.HasPrefix(line, g) {
			return true
		}
	}

	return false
}

// Name implements SubheaderPredicate.
func (LeadingGlyph) Name() string { return "leading_glyph" }

// noiseReason returns why line is discarded, or "" when it is not noise.
func noiseReason(line string, sub SubheaderPredicate) string {
	switch {
	case strings.HasPrefix(line, checkmarkGlyph):
		return "checkmark header"
	case sub.IsSubheader(line):
		return "subheader (" + sub.Name() + ")"
	case strings.HasPrefix(line, "("):
		return "annotation"
	default:
		return ""
	}
}
