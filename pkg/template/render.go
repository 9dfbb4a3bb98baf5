package template

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

// htmlWrapper frames the rendered body in a minimal document so mail
// clients apply a consistent charset and base style.
const (
	htmlHeader = `<!DOCTYPE html><html><head><meta charset="UTF-8"></head>` +
		`<body style="font-family: Arial, sans-serif; font-size: 14px; color: #222;">`
	htmlFooter = `</body></html>`
)

// markdown is the shared converter for FormatMarkdown bodies. Conversion
// happens after placeholder substitution, so placeholders behave the same
// in both body formats.
var markdown = goldmark.New()

// RenderedMessage is the per-recipient output of Render: the final subject
// plus HTML and plain-text alternatives of the body. It lives for one send
// attempt and is never persisted.
type RenderedMessage struct {
	Subject string
	HTML    string
	Text    string
}

// Render substitutes the recipient's argument values into the template and
// derives the HTML body and its plain-text fallback. It is pure and never
// fails: placeholders without a matching argument stay in the output as
// literal {name} tokens.
func Render(t *Template, args map[string]string) RenderedMessage {
	subject := Substitute(t.Subject, args)
	body := Substitute(t.Body, args)

	var htmlBody, text string
	if t.BodyFormat == FormatMarkdown {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(body), &buf); err != nil {
			// goldmark does not fail on any input text; fall back to the
			// raw body rather than dropping content.
			htmlBody = body
		} else {
			htmlBody = buf.String()
		}
		text = HTMLToText(htmlBody)
	} else {
		htmlBody = strings.ReplaceAll(body, "\n", "<br>")
		text = HTMLToText(body)
	}

	return RenderedMessage{
		Subject: subject,
		HTML:    htmlHeader + htmlBody + htmlFooter,
		Text:    text,
	}
}

// Substitute replaces every well-formed {name} token whose trimmed name is
// present in args with the mapped value. Tokens with no matching key and
// malformed braces are left untouched.
func Substitute(text string, args map[string]string) string {
	matches := spans(text)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, m := range matches {
		value, ok := args[m.name]
		if !ok {
			continue
		}
		b.WriteString(text[last:m.start])
		b.WriteString(value)
		last = m.end
	}
	b.WriteString(text[last:])

	return b.String()
}
