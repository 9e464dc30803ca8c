package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shibukawa/tagcheck/matcher"
)

// ErrUnknownFormat is returned for an unsupported report format
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects how a verdict is rendered
type Format string

const (
	FormatText       Format = "text"
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatCheckstyle Format = "checkstyle"
)

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML, FormatCheckstyle:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

// Reporter renders verdicts
type Reporter struct {
	w       io.Writer
	format  Format
	color   *bool
	verbose bool
}

// Option configures a Reporter
type Option func(*Reporter)

// WithColor forces colored text output on or off. Without it, colors
// follow terminal detection.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.color = &enabled
	}
}

// WithVerbose adds the defect kind to text output
func WithVerbose(verbose bool) Option {
	return func(r *Reporter) {
		r.verbose = verbose
	}
}

// New creates a Reporter writing to w
func New(w io.Writer, format Format, options ...Option) *Reporter {
	r := &Reporter{
		w:      w,
		format: format,
	}
	for _, opt := range options {
		opt(r)
	}

	return r
}

// Report writes the verdict for the document at path
func (r *Reporter) Report(path string, verdict *matcher.Verdict) error {
	switch r.format {
	case FormatText:
		return r.writeText(verdict)
	case FormatJSON:
		return r.writeJSON(path, verdict)
	case FormatYAML:
		return r.writeYAML(path, verdict)
	case FormatCheckstyle:
		return r.writeCheckstyle(path, verdict)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, r.format)
	}
}

// Line renders a defect as a single text line
func Line(d matcher.Defect) string {
	return fmt.Sprintf("Error at line: %d %s", d.Line(), d.Message())
}
