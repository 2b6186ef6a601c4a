package port

// Document is the host editor's view of an open file. The scanner only
// reads through this contract; it never mutates the document.
type Document interface {
	LineCount() int

	LineAt(i int) string

	Text() string
}

// ErrorReporter receives human-readable messages when a structural
// lookup finds nothing. Implementations decide whether and where to
// surface them; the scanner itself never fails hard on a miss.
type ErrorReporter interface {
	ShowErrorMessage(msg string)
}
