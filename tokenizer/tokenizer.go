package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMaxLineBytes is the longest line accepted by default
const DefaultMaxLineBytes = 1024 * 1024

// TagIterator yields tags in document order
type TagIterator iter.Seq2[Tag, error]

// TagTokenizer feeds a document line by line through a Dialect
type TagTokenizer struct {
	dialect Dialect
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	// Ignore lists tag names that are dropped before matching
	Ignore []string
	// MaxLineBytes bounds a single line; 0 means DefaultMaxLineBytes
	MaxLineBytes int
}

// NewTagTokenizer creates a new TagTokenizer
func NewTagTokenizer(dialect Dialect, options ...TokenizerOptions) *TagTokenizer {
	opts := TokenizerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}

	return &TagTokenizer{
		dialect: dialect,
		options: opts,
	}
}

// Dialect returns the dialect used for recognition
func (t *TagTokenizer) Dialect() Dialect {
	return t.dialect
}

// Tags returns an iterator over all tags of r. Lines are numbered from 1.
// A read failure is yielded once and ends the sequence.
func (t *TagTokenizer) Tags(r io.Reader) TagIterator {
	return func(yield func(Tag, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, min(64*1024, t.options.MaxLineBytes)), t.options.MaxLineBytes)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			for tag := range t.LineTags(scanner.Text(), lineNumber) {
				if !yield(tag, nil) {
					return
				}
			}
		}

		if err := scanner.Err(); err != nil {
			yield(Tag{}, fmt.Errorf("%w %d: %w", ErrReadLine, lineNumber+1, err))
		}
	}
}

// LineTags returns the tags of a single line, stamped with lineNumber
func (t *TagTokenizer) LineTags(line string, lineNumber int) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for tag := range t.dialect.Scan(line) {
			if slices.Contains(t.options.Ignore, tag.Name) {
				continue
			}

			tag.Position.Line = lineNumber
			if !yield(tag) {
				return
			}
		}
	}
}

// AllTags gets all tags as a slice
func (t *TagTokenizer) AllTags(r io.Reader) ([]Tag, error) {
	tags := make([]Tag, 0, 64)

	for tag, err := range t.Tags(r) {
		if err != nil {
			return tags, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// Decode wraps r so that a UTF-8 byte order mark is dropped and UTF-16
// input carrying a byte order mark is transcoded to UTF-8.
func Decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
