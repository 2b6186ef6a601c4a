package scanner

import (
	"strings"

	"csmap/internal/domain"
	"csmap/internal/port"
)

// typeDeclarationKeywords mark lines that open a namespace or type
// rather than a member; the member scan steps over them.
var typeDeclarationKeywords = []string{
	"namespace", "class", "interface", "struct", "enum", "delegate", "event",
}

// Outline collects every member declaration in the document that
// carries the given access modifier, in source order. Member bodies are
// stepped over by span, so a method call inside a body is never
// reported as a declaration.
func Outline(doc port.Document, modifier string) []domain.Declaration {
	var members []domain.Declaration

	for i := 0; i < doc.LineCount(); {
		line := doc.LineAt(i)
		if !HasModifier(line, modifier) || isTypeDeclaration(line) {
			i++
			continue
		}

		block := FullSignature(doc, i, modifier)
		if block.Type == domain.SignatureUnknown {
			i++
			continue
		}

		members = append(members, domain.Declaration{
			Kind:      block.Type.String(),
			Name:      MemberName(block.Text),
			Signature: StripModifier(block.Text, modifier),
			StartLine: block.Start,
			EndLine:   block.End,
		})
		i = block.End + 1
	}

	return members
}

// isTypeDeclaration reports whether the line opens a namespace or type.
// A keyword after the parameter list is a generic constraint, not a
// declaration ("where T : class"), so only keywords before any '('
// count.
func isTypeDeclaration(line string) bool {
	paren := strings.IndexByte(line, '(')
	for _, kw := range typeDeclarationKeywords {
		if i := wordIndex(line, kw); i >= 0 && (paren < 0 || i < paren) {
			return true
		}
	}
	return false
}
