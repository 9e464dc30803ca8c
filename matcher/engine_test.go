package matcher

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/tagcheck/testhelper"
	"github.com/shibukawa/tagcheck/tokenizer"
)

// reported is the part of a defect the tests compare
type reported struct {
	Name string
	Line int
	Kind DefectKind
}

func check(t *testing.T, doc string) *Verdict {
	t.Helper()

	tags, err := tokenizer.NewTagTokenizer(tokenizer.NewXMLDialect()).AllTags(strings.NewReader(doc))
	assert.NoError(t, err)

	e := NewEngine()
	for _, tag := range tags {
		e.Observe(tag)
	}

	verdict, err := e.Finish()
	assert.NoError(t, err)

	return verdict
}

func summarize(v *Verdict) []reported {
	var result []reported
	for _, d := range v.Defects {
		result = append(result, reported{d.Tag.Name, d.Line(), d.Kind})
	}

	return result
}

func TestWellFormedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"text only", "hello\nworld\n"},
		{"single pair", "<a></a>"},
		{"nested", "<a>\n  <b>\n    <c>x</c>\n  </b>\n</a>\n"},
		{"siblings", "<root><a/><a></a><b></b><a/></root>"},
		{"deep", strings.Repeat("<n>", 200) + strings.Repeat("</n>", 200)},
		{"self closing interspersed", "<a><br/><b><img/></b><hr/></a><br/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := check(t, tt.doc)
			assert.False(t, v.ErrorsFound)
			assert.True(t, v.Valid())
			assert.Equal(t, 0, len(v.Defects))
		})
	}
}

func TestSelfClosingImmunity(t *testing.T) {
	v := check(t, "<x/><x/><y/>\n<x/>\n<y />")
	assert.True(t, v.Valid())
	assert.Equal(t, 0, len(v.Defects))
}

func TestDefects(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected []reported
	}{
		{
			name:     testhelper.CaseName(t, "single unclosed tag"),
			doc:      "<a>",
			expected: []reported{{"a", 1, Unclosed}},
		},
		{
			name:     testhelper.CaseName(t, "single unexpected closer"),
			doc:      "</a>",
			expected: []reported{{"a", 1, UnexpectedClose}},
		},
		{
			name:     testhelper.CaseName(t, "misnesting recovery"),
			doc:      "<a><b></a></b>",
			expected: []reported{{"b", 1, Misnested}},
		},
		{
			name: testhelper.CaseName(t, "unwind reports every tag above the match, innermost first"),
			doc:  "<a>\n<b>\n<c>\n</a>",
			expected: []reported{
				{"c", 3, Misnested},
				{"b", 2, Misnested},
			},
		},
		{
			name:     testhelper.CaseName(t, "closer with no candidate ancestor"),
			doc:      "<a></b></a>",
			expected: []reported{{"b", 1, Orphaned}},
		},
		{
			name: testhelper.CaseName(t, "unclosed tags are reported innermost first"),
			doc:  "<a>\n<b>\n<c>",
			expected: []reported{
				{"c", 3, Unclosed},
				{"b", 2, Unclosed},
				{"a", 1, Unclosed},
			},
		},
		{
			name:     testhelper.CaseName(t, "repeated stray closer discharges the first one"),
			doc:      "</a>\n</a>",
			expected: []reported{{"a", 1, UnexpectedClose}},
		},
		{
			name: testhelper.CaseName(t, "stray closer then valid content"),
			doc:  "</p>\n<a></a>",
			expected: []reported{
				{"p", 1, UnexpectedClose},
			},
		},
		{
			name: testhelper.CaseName(t, "case sensitive names"),
			doc:  "<A></a>",
			expected: []reported{
				{"A", 1, Unclosed},
				{"a", 1, Orphaned},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := check(t, tt.doc)
			assert.True(t, v.ErrorsFound)
			assert.False(t, v.Valid())
			assert.Equal(t, tt.expected, summarize(v))
		})
	}
}

func TestDeferredMatchReportsEarlierTag(t *testing.T) {
	v := check(t, "<a>\n<b>\n</a>\n</b>")

	assert.Equal(t, 1, len(v.Defects))
	d := v.Defects[0]
	assert.Equal(t, "<b>", d.Tag.Text)
	assert.Equal(t, 2, d.Line())
	assert.Equal(t, "<b> is not constructed correctly.", d.Message())
}

func TestLineNumbersComeFromRecognition(t *testing.T) {
	doc := "<root>\n\n  <item>\n  <other/>\n\n</root>\n\n\n"
	v := check(t, doc)

	assert.Equal(t, []reported{{"item", 3, Misnested}}, summarize(v))
}

func TestIdempotentAcrossRuns(t *testing.T) {
	doc := "<a>\n</x>\n<b><c></b>\n</a>\n<d>\n</c>"

	first := check(t, doc)
	second := check(t, doc)

	assert.Equal(t, first, second)
	assert.NotZero(t, len(first.Defects))
}

func TestObserveAfterFinish(t *testing.T) {
	e := NewEngine()
	e.Observe(tokenizer.Tag{Kind: tokenizer.Opening, Name: "a", Text: "<a>", Position: tokenizer.Position{Line: 1, Column: 1}})

	first, err := e.Finish()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(first.Defects))

	e.Observe(tokenizer.Tag{Kind: tokenizer.Closing, Name: "a", Text: "</a>", Position: tokenizer.Position{Line: 2, Column: 1}})

	second, err := e.Finish()
	assert.IsError(t, err, ErrInvariantViolation)
	assert.IsError(t, err, ErrEngineFinished)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, len(second.Defects))
}

func TestValidate(t *testing.T) {
	tags := []tokenizer.Tag{
		{Kind: tokenizer.Opening, Name: "a", Text: "<a>", Position: tokenizer.Position{Line: 1, Column: 1}},
		{Kind: tokenizer.SelfClosing, Name: "a", Text: "<a/>", Position: tokenizer.Position{Line: 1, Column: 4}},
		{Kind: tokenizer.Closing, Name: "a", Text: "</a>", Position: tokenizer.Position{Line: 2, Column: 1}},
	}

	v, err := Validate(func(yield func(tokenizer.Tag) bool) {
		for _, tag := range tags {
			if !yield(tag) {
				return
			}
		}
	})

	assert.NoError(t, err)
	assert.True(t, v.Valid())
}
