package usecase

import (
	"csmap/internal/adapter/scanner"
	"csmap/internal/domain"
	"csmap/internal/port"
)

// Locator finds the declaration enclosing a cursor position. It walks
// upward from the cursor line to the nearest line carrying the access
// modifier, scans that declaration, and requires both the requested
// family and cursor containment in the scanned span. The containment
// check is what keeps a method call from being reported as the
// enclosing property just because a property sits textually above it.
type Locator struct {
	modifier string
}

// NewLocator creates a locator for declarations carrying modifier
// (defaults to public).
func NewLocator(modifier string) *Locator {
	if modifier == "" {
		modifier = "public"
	}
	return &Locator{modifier: modifier}
}

// MethodSignatureAt returns the body-relative signature of the method
// enclosing pos. The method's span is body-inclusive: the cursor may
// sit anywhere between the declaration and the closing body brace.
func (l *Locator) MethodSignatureAt(doc port.Document, pos domain.Position) (string, bool) {
	block, ok := l.enclosing(doc, pos)
	if !ok || block.Type != domain.SignatureMethod {
		return "", false
	}
	return scanner.StripModifier(block.Text, l.modifier), true
}

// PropertySignatureAt returns the body-relative signature of the
// property (accessor-bodied or expression-bodied) whose declaration
// spans pos.
func (l *Locator) PropertySignatureAt(doc port.Document, pos domain.Position) (string, bool) {
	block, ok := l.enclosing(doc, pos)
	if !ok || !block.Type.IsProperty() {
		return "", false
	}
	return scanner.StripModifier(block.Text, l.modifier), true
}

// DeclarationAt returns whatever declaration encloses pos, regardless
// of family.
func (l *Locator) DeclarationAt(doc port.Document, pos domain.Position) (domain.Signature, bool) {
	block, ok := l.enclosing(doc, pos)
	if !ok {
		return domain.Signature{Type: domain.SignatureUnknown}, false
	}
	return domain.Signature{
		Text: scanner.StripModifier(block.Text, l.modifier),
		Type: block.Type,
	}, true
}

// enclosing scans upward from pos to the first modifier-bearing line
// and runs the signature scanner there. The first hit decides: an
// unclassifiable declaration or a span that does not contain the
// cursor means no enclosing declaration.
func (l *Locator) enclosing(doc port.Document, pos domain.Position) (scanner.Block, bool) {
	if pos.Line < 0 || pos.Line >= doc.LineCount() {
		return scanner.Block{}, false
	}
	for line := pos.Line; line >= 0; line-- {
		if !scanner.HasModifier(doc.LineAt(line), l.modifier) {
			continue
		}
		block := scanner.FullSignature(doc, line, l.modifier)
		if block.Type == domain.SignatureUnknown {
			return scanner.Block{}, false
		}
		if pos.Line < block.Start || pos.Line > block.End {
			return scanner.Block{}, false
		}
		return block, true
	}
	return scanner.Block{}, false
}
