package matcher

import (
	"errors"

	"github.com/shibukawa/tagcheck/tokenizer"
)

// Sentinel errors
var (
	// ErrInvariantViolation marks a container failure the matching rules
	// should have made unreachable. The verdict computed so far is kept.
	ErrInvariantViolation = errors.New("tag matcher invariant violated")
	// ErrEngineFinished is recorded when tags are observed after Finish.
	ErrEngineFinished = errors.New("engine already finished")
)

// DefectKind classifies why a tag was reported
type DefectKind int

const (
	// UnexpectedClose is a closing tag seen while no tag was open
	UnexpectedClose DefectKind = iota
	// Misnested is a tag left open above a closing tag that matched further down
	Misnested
	// Unclosed is a tag still open at the end of the document
	Unclosed
	// Orphaned is a closing tag with no open tag of the same name anywhere
	Orphaned
)

// String returns the string representation of DefectKind
func (k DefectKind) String() string {
	switch k {
	case UnexpectedClose:
		return "unexpected-close"
	case Misnested:
		return "misnested"
	case Unclosed:
		return "unclosed"
	case Orphaned:
		return "orphaned"
	default:
		return "unknown"
	}
}

// Defect is a single reported structural problem
type Defect struct {
	Tag  tokenizer.Tag
	Kind DefectKind
}

// Line returns the line the tag was recognized on
func (d Defect) Line() int {
	return d.Tag.Position.Line
}

// Message describes the defect without its location
func (d Defect) Message() string {
	return d.Tag.Text + " is not constructed correctly."
}

// Verdict is the outcome of validating one document
type Verdict struct {
	// ErrorsFound is set as soon as any anomaly is recorded. It can stay
	// true with no defects when every anomaly was reconciled away.
	ErrorsFound bool
	Defects     []Defect
}

// Valid reports whether the document had no anomalies at all
func (v *Verdict) Valid() bool {
	return !v.ErrorsFound
}
