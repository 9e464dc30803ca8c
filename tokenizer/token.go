package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnknownDialect = errors.New("unknown dialect")
	ErrReadLine       = errors.New("failed to read line")
)

// Kind classifies a tag occurrence
type Kind int

const (
	// Opening is a start tag that must be matched by a closing tag
	Opening Kind = iota
	// Closing is an end tag
	Closing
	// SelfClosing opens and closes itself and never takes part in matching
	SelfClosing
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case Opening:
		return "OPENING"
	case Closing:
		return "CLOSING"
	case SelfClosing:
		return "SELF_CLOSING"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source document
type Position struct {
	Line   int // 1-based
	Column int // 1-based byte column
}

// Tag is a single recognized tag occurrence. It is an immutable value.
type Tag struct {
	Kind     Kind
	Name     string
	Text     string // verbatim source snippet
	Position Position
}

// String returns the string representation of Tag
func (t Tag) String() string {
	return t.Kind.String() + "(" + t.Name + "): " + t.Text
}
