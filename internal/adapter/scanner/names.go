package scanner

import (
	"strings"
)

// NotFoundError reports that a structural lookup matched nothing. It is
// never a hard failure: callers surface the message if they want to and
// treat the empty result as "no structural fact available here".
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return "could not find " + e.What
}

// memberModifiers are the declaration keywords stripped before the
// return type when extracting a member name.
var memberModifiers = []string{
	"public", "private", "protected", "internal",
	"static", "virtual", "override", "abstract", "sealed",
	"async", "new", "readonly", "partial",
}

// Namespace returns the identifier following the first namespace
// keyword in text. Dotted names (My.App.Models) are kept whole.
func Namespace(text string) (string, error) {
	i := wordIndex(text, "namespace")
	if i < 0 {
		return "", &NotFoundError{What: "namespace"}
	}
	rest := text[i+len("namespace"):]
	name := readIdentifier(strings.TrimLeft(rest, " \t\r\n"), true)
	if name == "" {
		return "", &NotFoundError{What: "namespace"}
	}
	return name, nil
}

// ClassName returns the identifier following the first class keyword in
// text. The name ends at whitespace, a generic parameter list, a base
// list colon, or the body brace.
func ClassName(text string) (string, error) {
	i := wordIndex(text, "class")
	if i < 0 {
		return "", &NotFoundError{What: "class name"}
	}
	rest := strings.TrimLeft(text[i+len("class"):], " \t\r\n")
	end := len(rest)
	for j, r := range rest {
		if r == '<' || r == ':' || r == '{' || !isIdentRune(r) {
			end = j
			break
		}
	}
	name := rest[:end]
	if name == "" {
		return "", &NotFoundError{What: "class name"}
	}
	return name, nil
}

// InheritedNames returns the bare type names of a declaration's base
// list in source order, generic argument lists stripped. The first
// entry is positionally treated as the base class and dropped when
// includeBaseClasses is false; when the only entry is actually an
// interface there is no way to tell lexically, and it is dropped all
// the same. An empty slice means no base list was found.
func InheritedNames(text string, includeBaseClasses bool) []string {
	i := wordIndex(text, "class")
	if i < 0 {
		return nil
	}
	rest := text[i+len("class"):]

	// Find the base-list colon at top level; a brace or constraint
	// clause first means the declaration has no base list.
	var b Balance
	colon := -1
	for j, r := range rest {
		if b.Level() {
			if r == ':' {
				colon = j
				break
			}
			if r == '{' {
				return nil
			}
			if wordAt(rest, j, "where") {
				return nil
			}
		}
		b.Feed(r)
	}
	if colon < 0 {
		return nil
	}

	list := rest[colon+1:]
	if end := baseListEnd(list); end >= 0 {
		list = list[:end]
	}

	var names []string
	for _, entry := range splitTopLevel(list, ',') {
		entry = strings.TrimSpace(entry)
		if g := strings.IndexRune(entry, '<'); g >= 0 {
			entry = entry[:g]
		}
		if entry != "" {
			names = append(names, entry)
		}
	}
	if !includeBaseClasses && len(names) > 0 {
		names = names[1:]
	}
	return names
}

// baseListEnd returns the index where a base list stops: the first
// top-level brace or where keyword. -1 means it runs to the end.
func baseListEnd(list string) int {
	var b Balance
	for j, r := range list {
		if b.Level() {
			if r == '{' {
				return j
			}
			if wordAt(list, j, "where") {
				return j
			}
		}
		b.Feed(r)
	}
	return -1
}

// MemberName extracts the declared name from a member signature: the
// identifier that follows the return type. The return type may carry a
// balanced generic argument list (IDictionary<string,int>) or be a
// balanced tuple type ((street: string, name: string)); neither is
// mistaken for the member's own parameter list. Returns "" when no
// return-type-then-identifier pattern exists.
func MemberName(text string) string {
	name, _ := memberTail(text)
	return name
}

// memberTail returns the member name declared in text together with
// the text following it. Both are empty when no pattern matches.
func memberTail(text string) (string, string) {
	rest := strings.TrimSpace(text)

	// Strip leading modifiers.
	for {
		stripped := false
		for _, mod := range memberModifiers {
			if strings.HasPrefix(rest, mod) && wordIndex(rest, mod) == 0 {
				rest = strings.TrimLeft(rest[len(mod):], " \t")
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	if rest == "" {
		return "", ""
	}

	// Consume the return type.
	if rest[0] == '(' {
		rest = rest[skipGroup(rest, 0):]
	} else {
		t := readIdentifier(rest, true)
		if t == "" {
			return "", ""
		}
		rest = rest[len(t):]
		if strings.HasPrefix(rest, "<") {
			rest = rest[skipGroup(rest, 0):]
		}
		// Array return types: skip the rank brackets.
		for strings.HasPrefix(rest, "[") {
			if end := strings.IndexByte(rest, ']'); end >= 0 {
				rest = rest[end+1:]
			} else {
				return "", ""
			}
		}
		if strings.HasPrefix(rest, "?") {
			rest = rest[1:]
		}
	}

	rest = strings.TrimLeft(rest, " \t")
	name := readIdentifier(rest, false)
	if name == "" {
		return "", ""
	}
	return name, rest[len(name):]
}

// wordAt reports whether word occurs at byte index j of s as a whole
// word.
func wordAt(s string, j int, word string) bool {
	if j+len(word) > len(s) || s[j:j+len(word)] != word {
		return false
	}
	if j > 0 && isIdentRune(rune(s[j-1])) {
		return false
	}
	if j+len(word) < len(s) && isIdentRune(rune(s[j+len(word)])) {
		return false
	}
	return true
}

// readIdentifier returns the leading identifier of s, empty when s does
// not start with one. Dotted names are allowed when dotted is true.
func readIdentifier(s string, dotted bool) string {
	end := 0
	for j, r := range s {
		if isIdentRune(r) || (dotted && r == '.' && j > 0) {
			end = j + len(string(r))
			continue
		}
		break
	}
	return s[:end]
}
