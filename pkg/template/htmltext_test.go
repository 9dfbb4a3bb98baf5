package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailmerge/pkg/template"
)

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "inline tags stripped",
			html: "Hello <b>Dan</b> from <i>Acme</i>",
			want: "Hello Dan from Acme",
		},
		{
			name: "br becomes newline",
			html: "line one<br>line two<br/>line three",
			want: "line one\nline two\nline three",
		},
		{
			name: "paragraph boundaries become newlines",
			html: "<p>first</p><p>second</p>",
			want: "first\nsecond",
		},
		{
			name: "list items on separate lines",
			html: "<ul><li>one</li><li>two</li></ul>",
			want: "one\ntwo",
		},
		{
			name: "headings break lines",
			html: "<h1>Title</h1>body",
			want: "Title\nbody",
		},
		{
			name: "entities decoded",
			html: "Fish &amp; Chips &lt;daily&gt; &quot;special&quot;",
			want: `Fish & Chips <daily> "special"`,
		},
		{
			name: "non-breaking space becomes space",
			html: "a&nbsp;b",
			want: "a b",
		},
		{
			name: "plain text passes through",
			html: "no markup at all",
			want: "no markup at all",
		},
		{
			name: "placeholder braces survive",
			html: "Hello Dan from {company}",
			want: "Hello Dan from {company}",
		},
		{
			name: "blank line runs collapse",
			html: "<p>a</p><br><br><br><p>b</p>",
			want: "a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, template.HTMLToText(tt.html))
		})
	}
}

func TestHTMLToText_PreservesTextOrder(t *testing.T) {
	t.Parallel()

	html := "<div>first</div><p>second</p><span>third</span>"
	text := template.HTMLToText(html)

	first := strings.Index(text, "first")
	second := strings.Index(text, "second")
	third := strings.Index(text, "third")

	assert.True(t, first >= 0 && first < second && second < third,
		"visible text order must be preserved: %q", text)
}
