package document

import (
	"strings"

	"csmap/internal/domain"
)

// Snapshot is an immutable in-memory document built from raw text. It
// implements the port.Document contract for callers that hold file
// contents rather than a live editor buffer. Nothing is cached across
// calls; a snapshot is rebuilt from the current text on every query.
type Snapshot struct {
	raw   string
	lines []string
	eol   string
}

// NewSnapshot splits raw text into terminator-free lines and detects
// the line-ending style from the first line break found.
func NewSnapshot(raw string) *Snapshot {
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &Snapshot{
		raw:   raw,
		lines: lines,
		eol:   DetectLineEnding(raw),
	}
}

func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

func (s *Snapshot) LineAt(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

func (s *Snapshot) Text() string {
	return s.raw
}

// LineEnding returns the detected line-ending style.
func (s *Snapshot) LineEnding() string {
	return s.eol
}

// Source returns the snapshot as a domain value.
func (s *Snapshot) Source() domain.SourceText {
	return domain.SourceText{
		Lines:      append([]string(nil), s.lines...),
		LineEnding: s.eol,
	}
}

// DetectLineEnding reports "\r\n" when the first line break in raw is
// preceded by a carriage return, "\n" otherwise.
func DetectLineEnding(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i > 0 && raw[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
