package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeywordMode selects how keywords are pulled out of a question line.
type KeywordMode string

// Keyword modes.
const (
	// KeywordsRaw keeps tokens exactly as split, punctuation included.
	KeywordsRaw KeywordMode = "raw"
	// KeywordsNormalized trims surrounding punctuation before measuring a token.
	KeywordsNormalized KeywordMode = "normalized"
)

// DefaultMinKeywordLength is the shortest token kept as a keyword.
const DefaultMinKeywordLength = 5

// KeywordExtractor pulls keyword tokens from a line.
type KeywordExtractor struct {
	mode      KeywordMode
	minLength int
}

// NewKeywordExtractor creates an extractor. A minLength below 1 uses the default.
func NewKeywordExtractor(mode KeywordMode, minLength int) *KeywordExtractor {
	if mode == "" {
		mode = KeywordsRaw
	}

	if minLength < 1 {
		minLength = DefaultMinKeywordLength
	}

	return &KeywordExtractor{mode: mode, minLength: minLength}
}

// Extract returns the qualifying tokens of line in order. The result is never nil.
func (k *KeywordExtractor) Extract(line string) []string {
	keywords := []string{}

	for _, tok := range strings.Fields(line) {
		if k.mode == KeywordsNormalized {
			tok = strings.TrimFunc(tok, isEdgePunct)
		}

		if utf8.RuneCountInString(tok) >= k.minLength {
			keywords = append(keywords, tok)
		}
	}

	return keywords
}

func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
