package scanner

// Balance tracks the nesting depth of angle brackets, parentheses, and
// braces across a character stream, processed left to right. Depth is
// clamped at zero: an unmatched closer is ignored rather than treated
// as an error, since the surrounding text is not guaranteed to be
// well-formed outside the declaration being scanned.
type Balance struct {
	Angle int
	Paren int
	Brace int
}

// Feed advances the balance by one character.
func (b *Balance) Feed(r rune) {
	switch r {
	case '<':
		b.Angle++
	case '>':
		if b.Angle > 0 {
			b.Angle--
		}
	case '(':
		b.Paren++
	case ')':
		if b.Paren > 0 {
			b.Paren--
		}
	case '{':
		b.Brace++
	case '}':
		if b.Brace > 0 {
			b.Brace--
		}
	}
}

// FeedString advances the balance across a whole string.
func (b *Balance) FeedString(s string) {
	for _, r := range s {
		b.Feed(r)
	}
}

// Level reports whether all three depths are back at zero, i.e. the
// scan position is top-level relative to where the balance started.
func (b *Balance) Level() bool {
	return b.Angle == 0 && b.Paren == 0 && b.Brace == 0
}

// indexTopLevel returns the index of the first occurrence of target in
// s at top level, or -1 when every occurrence is nested (or absent).
func indexTopLevel(s string, target rune) int {
	var b Balance
	for i, r := range s {
		if r == target && b.Level() {
			return i
		}
		b.Feed(r)
	}
	return -1
}

// splitTopLevel splits s on occurrences of sep at top level. Nested
// separators, e.g. the commas inside IDictionary<string,int>, are left
// inside their entry.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	var b Balance
	start := 0
	for i, r := range s {
		if r == sep && b.Level() {
			parts = append(parts, s[start:i])
			start = i + len(string(r))
			continue
		}
		b.Feed(r)
	}
	parts = append(parts, s[start:])
	return parts
}

// skipGroup returns the index just past the group opened at s[i], which
// must be an opener the balancer tracks. A group left open by truncated
// input consumes the rest of the string.
func skipGroup(s string, i int) int {
	var b Balance
	for j, r := range s[i:] {
		b.Feed(r)
		if b.Level() {
			return i + j + 1
		}
	}
	return len(s)
}
