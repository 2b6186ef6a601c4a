package scanner

import (
	"strings"

	"csmap/internal/domain"
	"csmap/internal/port"
)

// Block is the result of scanning one declaration: its classification,
// normalized single-line text, and the line span consumed. End is
// body-inclusive for methods and declaration-only for properties, so
// callers can test cursor containment without re-deriving the span.
type Block struct {
	Type  domain.SignatureType
	Text  string
	Start int
	End   int
}

// Signature returns the block's text and classification as a
// domain.Signature value.
func (b Block) Signature() domain.Signature {
	return domain.Signature{Text: b.Text, Type: b.Type}
}

type opening int

const (
	openNone opening = iota
	openParen
	openBrace
	openArrow
)

// FullSignature scans the declaration opening at startLine and returns
// its classification, normalized signature, and consumed span. The
// start line must carry the given access modifier; anything the scan
// cannot classify comes back as SignatureUnknown with empty text.
func FullSignature(doc port.Document, startLine int, modifier string) Block {
	unknown := Block{Type: domain.SignatureUnknown, Start: startLine, End: startLine}
	if startLine < 0 || startLine >= doc.LineCount() {
		return unknown
	}
	line := doc.LineAt(startLine)
	if !HasModifier(line, modifier) || isTypeDeclaration(line) {
		return unknown
	}

	tok := classifyOpening(line)
	if tok == openNone {
		// The declaration may continue on the next line: a wrapped
		// parameter list, or accessor braces below the property name.
		tok = peekContinuation(doc, startLine)
	}

	switch tok {
	case openParen:
		return scanMethod(doc, startLine)
	case openBrace:
		return scanFullProperty(doc, startLine)
	case openArrow:
		return scanLambdaProperty(doc, startLine)
	default:
		return unknown
	}
}

// classifyOpening picks the structural token that opens the member's
// tail. Classification runs on the text after the member name, so the
// parentheses of a tuple return type are not mistaken for a parameter
// list. When no member name can be read (constructors have none), the
// whole line is classified instead.
func classifyOpening(line string) opening {
	name, rest := memberTail(line)
	if name == "" {
		rest = line
	}
	return firstToken(rest)
}

// firstToken returns whichever of '(', '{', "=>" occurs first in s.
func firstToken(s string) opening {
	paren := strings.IndexByte(s, '(')
	brace := strings.IndexByte(s, '{')
	arrow := strings.Index(s, "=>")

	best, tok := -1, openNone
	for _, c := range []struct {
		at   int
		kind opening
	}{{paren, openParen}, {brace, openBrace}, {arrow, openArrow}} {
		if c.at >= 0 && (best < 0 || c.at < best) {
			best, tok = c.at, c.kind
		}
	}
	return tok
}

// peekContinuation checks whether the line after startLine opens the
// rest of the declaration with a structural token. A blank line or
// anything else ends the declaration instead.
func peekContinuation(doc port.Document, startLine int) opening {
	if startLine+1 >= doc.LineCount() {
		return openNone
	}
	t := strings.TrimSpace(doc.LineAt(startLine + 1))
	switch {
	case strings.HasPrefix(t, "{"):
		return openBrace
	case strings.HasPrefix(t, "("):
		return openParen
	case strings.HasPrefix(t, "=>"):
		return openArrow
	default:
		return openNone
	}
}

// scanMethod accumulates the signature until the parameter list closes,
// consumes a trailing constraint clause, and brace-matches the body so
// End is body-inclusive. A top-level ';' before any body ends a
// body-less declaration; "=>" starts an expression body that runs to
// the terminating ';'.
func scanMethod(doc port.Document, startLine int) Block {
	var parts []string
	var b Balance
	parenOpened := false

	for line := startLine; line < doc.LineCount(); line++ {
		text := doc.LineAt(line)
		for idx, r := range text {
			if parenOpened && b.Level() {
				switch {
				case r == '{':
					parts = append(parts, strings.TrimSpace(text[:idx]))
					return methodWithBody(doc, parts, startLine, line, text[idx:])
				case r == ';':
					parts = append(parts, strings.TrimSpace(text[:idx]))
					return methodBlock(parts, startLine, line)
				case r == '=' && strings.HasPrefix(text[idx:], "=>"):
					parts = append(parts, strings.TrimSpace(text[:idx]))
					return methodExpr(doc, parts, startLine, line, idx)
				}
			}
			b.Feed(r)
			if r == '(' {
				parenOpened = true
			}
		}
		parts = append(parts, strings.TrimSpace(text))
	}

	if !parenOpened {
		return Block{Type: domain.SignatureUnknown, Start: startLine, End: startLine}
	}
	// Document truncated mid-declaration: best-effort partial signature.
	return methodBlock(parts, startLine, doc.LineCount()-1)
}

func methodBlock(parts []string, start, end int) Block {
	return Block{
		Type:  domain.SignatureMethod,
		Text:  joinSignature(parts),
		Start: start,
		End:   end,
	}
}

// methodWithBody brace-matches the body opening at rest so the block
// span covers the whole method.
func methodWithBody(doc port.Document, parts []string, start, bodyLine int, rest string) Block {
	var b Balance
	b.FeedString(rest)
	end := bodyLine
	for line := bodyLine + 1; line < doc.LineCount() && b.Brace > 0; line++ {
		b.FeedString(doc.LineAt(line))
		end = line
	}
	return methodBlock(parts, start, end)
}

// methodExpr finds the ';' terminating an expression body.
func methodExpr(doc port.Document, parts []string, start, line, idx int) Block {
	end := line
	text := doc.LineAt(line)[idx:]
	for !strings.ContainsRune(text, ';') {
		end++
		if end >= doc.LineCount() {
			end = doc.LineCount() - 1
			break
		}
		text = doc.LineAt(end)
	}
	return methodBlock(parts, start, end)
}

// scanFullProperty captures a brace-bodied accessor property through
// its closing accessor brace.
func scanFullProperty(doc port.Document, startLine int) Block {
	var parts []string
	var b Balance
	opened := false
	end := startLine

	for line := startLine; line < doc.LineCount(); line++ {
		text := doc.LineAt(line)
		if line > startLine && !opened && IsTerminating(text) {
			// The accessor brace never appeared; the next member
			// boundary bounds the scan.
			break
		}
		parts = append(parts, strings.TrimSpace(text))
		b.FeedString(text)
		if strings.ContainsRune(text, '{') {
			opened = true
		}
		end = line
		if opened && b.Brace == 0 {
			break
		}
	}

	return Block{
		Type:  domain.SignatureFullProperty,
		Text:  joinSignature(parts),
		Start: startLine,
		End:   end,
	}
}

// scanLambdaProperty captures an expression-bodied property through
// the ';' ending its expression.
func scanLambdaProperty(doc port.Document, startLine int) Block {
	var parts []string
	end := startLine

	for line := startLine; line < doc.LineCount(); line++ {
		text := doc.LineAt(line)
		if line > startLine && IsTerminating(text) {
			break
		}
		parts = append(parts, strings.TrimSpace(text))
		end = line
		if strings.ContainsRune(text, ';') {
			break
		}
	}

	return Block{
		Type:  domain.SignatureLambdaProperty,
		Text:  joinSignature(parts),
		Start: startLine,
		End:   end,
	}
}

// joinSignature reassembles accumulated declaration lines into the
// normalized single-line form: runs of whitespace collapse to one
// space, and line breaks right after '(' or before ')' leave no space
// behind.
func joinSignature(parts []string) string {
	s := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	s = strings.ReplaceAll(s, "( ", "(")
	return strings.ReplaceAll(s, " )", ")")
}

// StripModifier removes a leading access modifier, yielding the
// body-relative form of a signature.
func StripModifier(signature, modifier string) string {
	s := strings.TrimSpace(signature)
	if wordIndex(s, modifier) == 0 {
		s = strings.TrimLeft(s[len(modifier):], " \t")
	}
	return s
}
