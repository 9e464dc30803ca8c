package tokenizer

import (
	"fmt"
	"iter"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Dialect recognizes tag occurrences within a single line of text.
// Scan yields tags left to right with Position.Column set; the line number
// is assigned by the caller.
type Dialect interface {
	Name() string
	Scan(line string) iter.Seq[Tag]
}

// DialectByName returns the dialect registered under name
func DialectByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "xml", "":
		return NewXMLDialect(), nil
	case "html":
		return NewHTMLDialect(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}
}

// XMLDialect recognizes tags with a regular expression. Processing
// instructions (<?...?>), comments and declarations (<!...>) never match.
type XMLDialect struct {
	pattern *regexp.Regexp
}

var xmlTagPattern = regexp.MustCompile(`<\s*(/?)\s*([A-Za-z_][-A-Za-z0-9_:.]*)([^<>]*)>`)

// NewXMLDialect creates the default dialect
func NewXMLDialect() *XMLDialect {
	return &XMLDialect{pattern: xmlTagPattern}
}

func (d *XMLDialect) Name() string {
	return "xml"
}

func (d *XMLDialect) Scan(line string) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, m := range d.pattern.FindAllStringSubmatchIndex(line, -1) {
			tag := Tag{
				Kind: Opening,
				Name: line[m[4]:m[5]],
				Text: line[m[0]:m[1]],
				Position: Position{
					Column: m[0] + 1,
				},
			}

			switch {
			case m[3] > m[2]:
				tag.Kind = Closing
			case strings.HasSuffix(strings.TrimSpace(line[m[6]:m[7]]), "/"):
				tag.Kind = SelfClosing
			}

			if !yield(tag) {
				return
			}
		}
	}
}

// HTMLDialect recognizes tags with the golang.org/x/net/html tokenizer.
// Tag names are lower-cased and void elements count as self-closing.
type HTMLDialect struct {
	voidElements map[string]bool
}

// NewHTMLDialect creates the html dialect
func NewHTMLDialect() *HTMLDialect {
	return &HTMLDialect{
		voidElements: map[string]bool{
			"area": true, "base": true, "br": true, "col": true, "embed": true,
			"hr": true, "img": true, "input": true, "link": true, "meta": true,
			"param": true, "source": true, "track": true, "wbr": true,
		},
	}
}

func (d *HTMLDialect) Name() string {
	return "html"
}

func (d *HTMLDialect) Scan(line string) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		z := html.NewTokenizer(strings.NewReader(line))
		offset := 0

		for {
			tt := z.Next()
			if tt == html.ErrorToken {
				return
			}

			// Raw must be copied before TagName touches the buffer.
			raw := string(z.Raw())
			column := offset + 1
			offset += len(raw)

			var kind Kind
			switch tt {
			case html.StartTagToken:
				kind = Opening
			case html.EndTagToken:
				kind = Closing
			case html.SelfClosingTagToken:
				kind = SelfClosing
			default:
				continue
			}

			name, _ := z.TagName()
			tag := Tag{
				Kind:     kind,
				Name:     string(name),
				Text:     raw,
				Position: Position{Column: column},
			}

			if tag.Kind == Opening && d.voidElements[tag.Name] {
				tag.Kind = SelfClosing
			}

			if !yield(tag) {
				return
			}
		}
	}
}
