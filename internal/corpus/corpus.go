package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseAll reads every entry from r in order.
func ParseAll(r io.Reader, opts Options) ([]Entry, error) {
	p := NewParser(r, opts)
	var entries []Entry
	for p.Next() {
		entries = append(entries, p.Entry())
	}
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return entries, nil
}

// ParseFile parses a corpus file. Files ending in .html or .htm are
// flattened to text lines first.
func ParseFile(path string, opts Options) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close() // nolint:errcheck

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		lines, err := HTMLLines(f)
		if err != nil {
			return nil, err
		}
		r = strings.NewReader(strings.Join(lines, "\n"))
	}

	return ParseAll(r, opts)
}

// ToMap returns name → paragraphs. The first entry for a name wins.
func ToMap(entries []Entry) map[string][2]string {
	m := make(map[string][2]string, len(entries))
	for _, e := range entries {
		if _, exists := m[e.Name]; !exists {
			m[e.Name] = e.Paragraphs
		}
	}
	return m
}
