package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/pkg/template"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		args map[string]string
		want string
	}{
		{
			name: "replaces known placeholder",
			text: "Hi {name}",
			args: map[string]string{"name": "Dan"},
			want: "Hi Dan",
		},
		{
			name: "missing key leaves literal token",
			text: "Hello {name} from {company}",
			args: map[string]string{"name": "Dan"},
			want: "Hello Dan from {company}",
		},
		{
			name: "every occurrence replaced",
			text: "{name}, yes {name}",
			args: map[string]string{"name": "Dan"},
			want: "Dan, yes Dan",
		},
		{
			name: "trimmed name matches padded token",
			text: "Hi { name }",
			args: map[string]string{"name": "Dan"},
			want: "Hi Dan",
		},
		{
			name: "nil args leaves text unchanged",
			text: "Hi {name}",
			args: nil,
			want: "Hi {name}",
		},
		{
			name: "literal braces untouched",
			text: "style { color: red } end",
			args: map[string]string{"name": "Dan"},
			want: "style { color: red } end",
		},
		{
			name: "extra keys tolerated",
			text: "Hi {name}",
			args: map[string]string{"name": "Dan", "unused": "x"},
			want: "Hi Dan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, template.Substitute(tt.text, tt.args))
		})
	}
}

func TestRender_SpecimenTemplate(t *testing.T) {
	t.Parallel()

	tmpl := template.New("welcome")
	tmpl.Subject = "Hi {name}"
	tmpl.Body = "Hello <b>{name}</b> from {company}"

	msg := template.Render(tmpl, map[string]string{"name": "Dan"})

	assert.Equal(t, "Hi Dan", msg.Subject)
	assert.Contains(t, msg.HTML, "Hello <b>Dan</b> from {company}")
	assert.Equal(t, "Hello Dan from {company}", msg.Text)
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	tmpl := template.New("welcome")
	tmpl.Subject = "Hi {name}"
	tmpl.Body = "Hello {name},\nhere is your {thing}."
	args := map[string]string{"name": "Alice", "thing": "invoice"}

	first := template.Render(tmpl, args)
	second := template.Render(tmpl, args)

	require.Equal(t, first, second)
}

func TestRender_NewlinesBecomeBreaks(t *testing.T) {
	t.Parallel()

	tmpl := template.New("lines")
	tmpl.Body = "line one\nline two"

	msg := template.Render(tmpl, nil)

	assert.Contains(t, msg.HTML, "line one<br>line two")
	assert.Equal(t, "line one\nline two", msg.Text)
}

func TestRender_WrapsHTMLDocument(t *testing.T) {
	t.Parallel()

	tmpl := template.New("doc")
	tmpl.Body = "content"

	msg := template.Render(tmpl, nil)

	assert.True(t, strings.HasPrefix(msg.HTML, "<!DOCTYPE html>"))
	assert.Contains(t, msg.HTML, `<meta charset="UTF-8">`)
	assert.True(t, strings.HasSuffix(msg.HTML, "</body></html>"))
}

func TestRender_MarkdownBody(t *testing.T) {
	t.Parallel()

	tmpl := template.New("md")
	tmpl.BodyFormat = template.FormatMarkdown
	tmpl.Body = "Hello **{name}**"

	msg := template.Render(tmpl, map[string]string{"name": "Dan"})

	assert.Contains(t, msg.HTML, "<strong>Dan</strong>")
	assert.Contains(t, msg.Text, "Hello Dan")
	assert.NotContains(t, msg.Text, "**")
}

func TestRender_DoesNotMutateTemplate(t *testing.T) {
	t.Parallel()

	tmpl := template.New("frozen")
	tmpl.Subject = "Hi {name}"
	tmpl.Body = "Hello {name}"

	template.Render(tmpl, map[string]string{"name": "Dan"})

	assert.Equal(t, "Hi {name}", tmpl.Subject)
	assert.Equal(t, "Hello {name}", tmpl.Body)
}
