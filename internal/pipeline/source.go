package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"qbank/internal/classifier"
	"qbank/pkg/checksum"
)

// ErrMalformedEncoding is returned for input files that are not valid UTF-8.
var ErrMalformedEncoding = errors.New("input is not valid UTF-8")

// Source is the loaded text of one company dump.
type Source struct {
	Path    string
	Digest  string
	Lines   []string
	Missing bool
}

// LoadSource reads path. A missing file yields an empty Source, not an error.
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Source{Path: path, Digest: checksum.Missing, Missing: true}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s at byte %d", ErrMalformedEncoding, path, invalidOffset(data))
	}

	return &Source{
		Path:   path,
		Digest: checksum.Sum(data),
		Lines:  classifier.SplitLines(string(data)),
	}, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}

		i += size
	}

	return -1
}
