package rewrite

import (
	"strings"

	"csmap/internal/adapter/document"
	"csmap/internal/port"
)

// UsingStatements returns the leading using-block of a document, each
// line including its original terminator.
func UsingStatements(doc port.Document) []string {
	return UsingStatementsFromText(doc.Text())
}

// LineEnding reports the document's line-ending style.
func LineEnding(doc port.Document) string {
	return document.DetectLineEnding(doc.Text())
}

// UsingStatementsFromText returns the contiguous leading run of
// using-statement lines in raw text. Blank lines above the block are
// skipped; once the block has started, a blank or non-using line ends
// it.
func UsingStatementsFromText(raw string) []string {
	var stmts []string
	for _, line := range splitAfterLines(raw) {
		switch {
		case isUsingLine(line):
			stmts = append(stmts, line)
		case strings.TrimSpace(line) == "" && len(stmts) == 0:
			// blank above the block
		default:
			return stmts
		}
	}
	return stmts
}

// ReplaceUsingStatements splices stmts in place of the existing leading
// using-block, each statement normalized to end with lineEnding. Every
// byte outside the block is preserved unchanged; the result is a new
// text value, applying it to the live document is the caller's
// responsibility.
func ReplaceUsingStatements(raw string, stmts []string, lineEnding string) string {
	start, end := usingBlockSpan(raw)

	var sb strings.Builder
	sb.WriteString(raw[:start])
	for _, s := range stmts {
		sb.WriteString(strings.TrimRight(s, "\r\n"))
		sb.WriteString(lineEnding)
	}
	sb.WriteString(raw[end:])
	return sb.String()
}

// usingBlockSpan returns the byte range [start, end) of the leading
// using-block. A file with no block yields (0, 0): replacements insert
// at the very top.
func usingBlockSpan(raw string) (start, end int) {
	off := 0
	start = -1
	for _, line := range splitAfterLines(raw) {
		switch {
		case isUsingLine(line):
			if start < 0 {
				start = off
			}
			end = off + len(line)
		case strings.TrimSpace(line) == "" && start < 0:
			// blank above the block
		default:
			if start < 0 {
				return 0, 0
			}
			return start, end
		}
		off += len(line)
	}
	if start < 0 {
		return 0, 0
	}
	return start, end
}

func isUsingLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "using ") && strings.HasSuffix(t, ";")
}

// splitAfterLines splits raw text into lines, each keeping its
// terminator. The final fragment, if unterminated, is kept too.
func splitAfterLines(raw string) []string {
	var lines []string
	from := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			lines = append(lines, raw[from:i+1])
			from = i + 1
		}
	}
	if from < len(raw) {
		lines = append(lines, raw[from:])
	}
	return lines
}
