package corpus

import (
	"bufio"
	"io"
	"strings"
)

const (
	markerPrefix = "Paragraph"
	marker1      = "Paragraph 1:"
	marker2      = "Paragraph 2:"

	// headerLookahead is how many lines after a header may hold the
	// first paragraph marker.
	headerLookahead = 2
)

// Entry is one course description from the corpus.
type Entry struct {
	Name       string
	Paragraphs [2]string
	Batch      string // label of the last batch header above the entry
	Line       int    // 1-based line of the name header
}

// Blurb returns the paragraphs as a list.
func (e Entry) Blurb() []string {
	return []string{e.Paragraphs[0], e.Paragraphs[1]}
}

// Options tune parsing.
type Options struct {
	// SkipPrefixes are line prefixes ignored everywhere ("---", "Note:").
	SkipPrefixes []string
	// BatchHeaders maps a substring of a batch header line to its label.
	BatchHeaders []BatchHeader
}

// BatchHeader maps a header line substring to a batch label.
type BatchHeader struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Parser reads description entries lazily from line-oriented text.
//
// Usage follows bufio.Scanner:
//
//	p := corpus.NewParser(r, opts)
//	for p.Next() {
//	    e := p.Entry()
//	}
//	if err := p.Err(); err != nil { ... }
//
// A Parser is single-pass; parse again with a new Parser over a new reader.
type Parser struct {
	scanner *bufio.Scanner
	opts    Options

	window  []line // lookahead buffer
	lineNo  int
	eof     bool
	batch   string
	current Entry
	err     error
}

type line struct {
	text string
	no   int
}

// NewParser creates a parser over r.
func NewParser(r io.Reader, opts Options) *Parser {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Parser{scanner: s, opts: opts}
}

// Next advances to the next complete entry. It returns false at the end of
// input or on a read error.
func (p *Parser) Next() bool {
	for {
		if _, ok := p.peek(0); !ok {
			return false
		}
		isHeader := p.isHeaderAt(0)
		hdr, _ := p.pop()
		p.trackBatch(hdr.text)

		if !isHeader {
			continue
		}

		entry, complete := p.readEntry(hdr)
		if complete {
			p.current = entry
			return true
		}
		// Incomplete entries are dropped; scanning resumes at whatever
		// stopped the entry.
	}
}

// Entry returns the entry produced by the last successful Next.
func (p *Parser) Entry() Entry {
	return p.current
}

// Err returns the first read error, if any.
func (p *Parser) Err() error {
	return p.err
}

// isHeaderAt reports whether the buffered line at idx names a course: a
// non-empty line that is not a marker, followed within the lookahead by a
// "Paragraph 1:" line with only blank lines in between.
func (p *Parser) isHeaderAt(idx int) bool {
	l, ok := p.peek(idx)
	if !ok {
		return false
	}
	text := strings.TrimSpace(l.text)
	if text == "" || strings.HasPrefix(text, markerPrefix) || p.skipped(text) || p.isBatchHeader(text) {
		return false
	}
	for i := 1; i <= headerLookahead; i++ {
		next, ok := p.peek(idx + i)
		if !ok {
			return false
		}
		nextText := strings.TrimSpace(next.text)
		if strings.Contains(nextText, marker1) {
			return true
		}
		if nextText != "" {
			return false
		}
	}
	return false
}

// readEntry consumes lines after a header up to the next header or the end
// of input, filling both paragraphs.
func (p *Parser) readEntry(hdr line) (Entry, bool) {
	entry := Entry{
		Name:  strings.TrimSpace(hdr.text),
		Batch: p.batch,
		Line:  hdr.no,
	}

	var paras [2][]string
	current := -1

	for {
		next, ok := p.peek(0)
		if !ok {
			break
		}
		text := strings.TrimSpace(next.text)

		switch {
		case strings.Contains(text, marker1):
			current = 0
			paras[0] = appendText(paras[0], after(text, marker1))
		case strings.Contains(text, marker2):
			current = 1
			paras[1] = appendText(paras[1], after(text, marker2))
		case p.isHeaderAt(0) || p.isBatchHeader(text):
			return finish(entry, paras)
		case text == "" || p.skipped(text):
		default:
			if current >= 0 {
				paras[current] = append(paras[current], text)
			}
		}
		p.pop()
	}

	return finish(entry, paras)
}

func finish(entry Entry, paras [2][]string) (Entry, bool) {
	entry.Paragraphs[0] = strings.TrimSpace(strings.Join(paras[0], " "))
	entry.Paragraphs[1] = strings.TrimSpace(strings.Join(paras[1], " "))
	return entry, entry.Paragraphs[0] != "" && entry.Paragraphs[1] != ""
}

func after(text, marker string) string {
	_, rest, _ := strings.Cut(text, marker)
	return strings.TrimSpace(rest)
}

func appendText(parts []string, text string) []string {
	if text == "" {
		return parts
	}
	return append(parts, text)
}

func (p *Parser) skipped(text string) bool {
	for _, prefix := range p.opts.SkipPrefixes {
		if prefix != "" && strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

func (p *Parser) isBatchHeader(text string) bool {
	_, ok := p.batchLabel(text)
	return ok
}

func (p *Parser) batchLabel(text string) (string, bool) {
	for _, bh := range p.opts.BatchHeaders {
		if bh.Key != "" && strings.Contains(text, bh.Key) {
			return bh.Label, true
		}
	}
	return "", false
}

func (p *Parser) trackBatch(text string) {
	if label, ok := p.batchLabel(text); ok {
		p.batch = label
	}
}

// peek returns the line i positions ahead without consuming it.
func (p *Parser) peek(i int) (line, bool) {
	for len(p.window) <= i && p.fill() {
	}
	if len(p.window) <= i {
		return line{}, false
	}
	return p.window[i], true
}

// pop consumes and returns the next line.
func (p *Parser) pop() (line, bool) {
	l, ok := p.peek(0)
	if !ok {
		return line{}, false
	}
	p.window = p.window[1:]
	return l, true
}

func (p *Parser) fill() bool {
	if p.eof {
		return false
	}
	if !p.scanner.Scan() {
		p.eof = true
		p.err = p.scanner.Err()
		return false
	}
	p.lineNo++
	p.window = append(p.window, line{text: p.scanner.Text(), no: p.lineNo})
	return true
}
