package template

import (
	"github.com/google/uuid"
)

// Format selects how a template body is turned into HTML.
type Format string

const (
	// FormatHTML treats the body as HTML fragments with plain newlines.
	// Newlines are converted to <br> so line breaks survive in mail clients.
	FormatHTML Format = "html"

	// FormatMarkdown converts the body from markdown to HTML after
	// placeholder substitution.
	FormatMarkdown Format = "markdown"
)

// Recipient is one entry in a template's recipient list: a destination
// address plus the values substituted for that recipient's placeholders.
// Addresses are not validated here; a malformed address surfaces as a
// send-time failure for that recipient only.
type Recipient struct {
	Email string            `json:"email"`
	Args  map[string]string `json:"args"`
}

// AttachmentRef points at a file attached to every message in a batch.
// Name is the display filename shown to the reader; Path is where the
// payload is read from when the batch is prepared.
type AttachmentRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Template is a reusable message definition. The engine treats it as a
// read-only input for the duration of a send; callers must not mutate a
// template while a batch over it is in flight.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Subject     string          `json:"subject"`
	Body        string          `json:"body"`
	BodyFormat  Format          `json:"body_format,omitempty"`
	Attachments []AttachmentRef `json:"attachments,omitempty"`
	Recipients  []Recipient     `json:"recipients"`
}

// New creates an empty template with a fresh unique ID.
func New(name string) *Template {
	return &Template{
		ID:         uuid.NewString(),
		Name:       name,
		BodyFormat: FormatHTML,
	}
}

// Placeholders returns the distinct placeholder names referenced by the
// template's subject and body, in first-seen order.
func (t *Template) Placeholders() []string {
	return Placeholders(t.Subject, t.Body)
}
