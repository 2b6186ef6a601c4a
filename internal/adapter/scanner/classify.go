package scanner

import (
	"strings"
	"unicode"
)

// terminatingModifiers are the access modifiers that mark the start of
// a new member when scanning forward past a declaration's body. The
// scan assumes a same-or-lower-visibility modifier is a member boundary.
var terminatingModifiers = []string{"protected", "private", "internal"}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// containsWord reports whether word occurs in text as a whole word,
// not as a substring of a longer identifier.
func containsWord(text, word string) bool {
	return wordIndex(text, word) >= 0
}

// wordIndex returns the byte index of the first whole-word occurrence
// of word in text, or -1.
func wordIndex(text, word string) int {
	if word == "" {
		return -1
	}
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return -1
		}
		i += from
		before := rune(0)
		if i > 0 {
			before = rune(text[i-1])
		}
		after := rune(0)
		if i+len(word) < len(text) {
			after = rune(text[i+len(word)])
		}
		if !isIdentRune(before) && !isIdentRune(after) {
			return i
		}
		from = i + len(word)
	}
	return -1
}

// HasModifier reports whether line contains the given access modifier
// as a whole word. HasModifier("public string Name", "public") is true;
// HasModifier("publicity", "public") is not.
func HasModifier(line, modifier string) bool {
	return containsWord(line, modifier)
}

// IsMethod reports whether a normalized signature is a method, i.e.
// whether its last syntactic token group is a parameter list. A
// trailing generic-constraint clause (where T : class) is stripped
// before the check.
func IsMethod(signature string) bool {
	sig := strings.TrimSpace(signature)
	if sig == "" {
		return false
	}
	sig = strings.TrimSpace(StripConstraint(sig))
	return strings.HasSuffix(sig, ")")
}

// StripConstraint removes a trailing "where T : ..." clause from a
// signature. The constraint is recognized only when a colon follows the
// where keyword, so a parameter happening to be named where survives.
func StripConstraint(signature string) string {
	i := wordIndex(signature, "where")
	for i >= 0 {
		rest := signature[i+len("where"):]
		if strings.Contains(rest, ":") {
			return signature[:i]
		}
		next := wordIndex(rest, "where")
		if next < 0 {
			break
		}
		i += len("where") + next
	}
	return signature
}

// IsTerminating reports whether a line ends a forward scan: an empty or
// whitespace-only line, or one carrying an access modifier other than
// the one being scanned for.
func IsTerminating(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	for _, kw := range terminatingModifiers {
		if containsWord(line, kw) {
			return true
		}
	}
	return false
}
