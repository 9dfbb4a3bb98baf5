package mailer

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// Build assembles a transport-ready Email from rendered content. The only
// failure mode is a structurally invalid recipient address, reported as
// ErrInvalidAddress; everything else is deterministic assembly.
//
// Every call generates a fresh Message-ID, even for an identical retry of
// a previously failed recipient, so downstream mail systems never see a
// retry as a duplicate of the original message identity.
func Build(rendered template.RenderedMessage, attachments []Attachment, from Identity, to, domain string) (*Email, error) {
	if _, err := mail.ParseAddress(to); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, to, err)
	}

	return &Email{
		Headers: map[string]string{
			"Message-ID": messageID(domain),
			"Date":       time.Now().Format(time.RFC1123Z),
			"Reply-To":   from.Address,
		},
		From:        from.String(),
		To:          to,
		Subject:     rendered.Subject,
		HTML:        rendered.HTML,
		Text:        rendered.Text,
		Attachments: attachments,
	}, nil
}

// messageID produces a globally unique identifier scoped to the sending
// domain. Collision probability across batches and runs is that of the
// underlying random 128-bit UUID.
func messageID(domain string) string {
	if domain == "" {
		domain = "localhost"
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
