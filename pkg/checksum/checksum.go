// Package checksum provides content digests used to report input and output identity.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ShortLength is the number of hex characters kept by Short.
const ShortLength = 12

// Missing is reported in place of a digest for a file that does not exist.
const Missing = "missing"

// Sum computes the SHA-256 hex digest of data.
func Sum(data []byte) string {
	hash := sha256.Sum256(data)

	return hex.EncodeToString(hash[:])
}

// Short truncates a digest for display.
func Short(digest string) string {
	if len(digest) <= ShortLength {
		return digest
	}

	return digest[:ShortLength]
}

// File returns the digest of the file at path, or Missing if it does not exist.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Missing, nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Sum(data), nil
}

// Files combines the digests of several files into one, in the given order.
func Files(paths ...string) (string, error) {
	h := sha256.New()

	for _, p := range paths {
		d, err := File(p)
		if err != nil {
			return "", err
		}

		h.Write([]byte(p + "=" + d + "\n"))
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
