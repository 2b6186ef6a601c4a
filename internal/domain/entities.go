package domain

// SignatureType classifies a scanned member declaration.
type SignatureType int

const (
	SignatureUnknown SignatureType = iota
	SignatureMethod
	SignatureFullProperty
	SignatureLambdaProperty
)

func (t SignatureType) String() string {
	switch t {
	case SignatureMethod:
		return "method"
	case SignatureFullProperty:
		return "property"
	case SignatureLambdaProperty:
		return "expression-property"
	default:
		return "unknown"
	}
}

// IsProperty reports whether the type is either property flavor.
func (t SignatureType) IsProperty() bool {
	return t == SignatureFullProperty || t == SignatureLambdaProperty
}

// Signature is a normalized single-line member declaration.
// Text is empty when Type is SignatureUnknown.
type Signature struct {
	Text string        `json:"text,omitempty"`
	Type SignatureType `json:"type"`
}

// Position is a cursor location within a document. Only Line drives the
// structural scan; Column is carried for callers that have it.
type Position struct {
	Line   int
	Column int
}

// SourceText is an immutable snapshot of a document: its lines without
// terminators plus the detected line-ending style.
type SourceText struct {
	Lines      []string
	LineEnding string
}

// Declaration is one extracted member of a type.
type Declaration struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Signature string `json:"signature"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
}

// FileOutline is everything the scanner extracts from one file.
type FileOutline struct {
	Path      string        `json:"path"`
	ModTime   int64         `json:"mod_time"`
	Namespace string        `json:"namespace,omitempty"`
	ClassName string        `json:"class_name,omitempty"`
	Inherits  []string      `json:"inherits,omitempty"`
	Usings    []string      `json:"usings,omitempty"`
	Members   []Declaration `json:"members,omitempty"`
}

// Stats summarizes the outline store.
type Stats struct {
	TotalFiles   int
	TotalMembers int
}
