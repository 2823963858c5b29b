// Package ingest loads policy documents from disk and normalizes their
// text for validation. Extraction from richer formats (PDF, DOCX) is a
// separate collaborator; this package handles plain UTF-8 text.
package ingest

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"
)

// Document is a loaded policy document with derived metadata.
type Document struct {
	Path      string
	Hash      string // "sha256:<hex>", computed over the original bytes
	Text      string // normalized content
	LineCount int
}

// Load reads a document file, computes its hash, and normalizes its text.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	sum := sha256.Sum256(data)
	text := Normalize(string(data))

	return &Document{
		Path:      path,
		Hash:      fmt.Sprintf("sha256:%x", sum),
		Text:      text,
		LineCount: countLines(text),
	}, nil
}

// Normalize unifies line endings to LF, strips trailing per-line
// whitespace, and collapses runs of blank lines down to two so that
// spacing quirks in the source file cannot shift validation results.
func Normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blanks++
			if blanks > 2 {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// countLines returns the number of lines in normalized text, with the
// empty string counting as zero.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
