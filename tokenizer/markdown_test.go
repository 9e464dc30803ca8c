package tokenizer

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/tagcheck/testhelper"
)

func TestMaskMarkdownCode(t *testing.T) {
	src := testhelper.TrimIndent(t, `
		# Example

		Use `+"`<b>`"+` for bold.

		<div class="note">
		</div>

		`+"```html"+`
		<p>unclosed
		`+"```"+`

		    <indented>

		<span></span>
	`)

	masked := MaskMarkdownCode([]byte(src))

	assert.Equal(t, strings.Count(src, "\n"), strings.Count(string(masked), "\n"))
	assert.Equal(t, len(src), len(masked))

	tags, err := NewTagTokenizer(NewXMLDialect()).AllTags(strings.NewReader(string(masked)))
	assert.NoError(t, err)

	type seen struct {
		Name string
		Line int
	}

	var actual []seen
	for _, tag := range tags {
		actual = append(actual, seen{tag.Name, tag.Position.Line})
	}

	assert.Equal(t, []seen{
		{"div", 5},
		{"div", 6},
		{"span", 14},
		{"span", 14},
	}, actual)
}

func TestIsMarkdownFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"README.md", true},
		{"notes.MARKDOWN", true},
		{"page.html", false},
		{"md", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMarkdownFile(tt.filename))
		})
	}
}
