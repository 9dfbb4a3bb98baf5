// Package resend adapts the mailer Transport boundary to the Resend HTTP
// API. The transport contract only requires an authenticated, encrypted
// submission channel; HTTPS submission qualifies the same way SMTP does.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

// Transport implements mailer.Transport using the Resend API.
type Transport struct {
	client *resend.Client
	config Config
}

// New creates a new Resend transport.
func New(cfg Config) *Transport {
	return &Transport{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Connect implements mailer.Transport. The API is stateless per request,
// so there is no dial step; a missing API key is the analogue of an
// authentication failure and aborts the batch before any send.
func (t *Transport) Connect(_ context.Context) (mailer.Session, error) {
	if t.config.APIKey == "" {
		return nil, fmt.Errorf("%w: resend API key is not set", mailer.ErrAuthFailed)
	}
	return &session{client: t.client}, nil
}

// session submits messages through the shared Resend client.
type session struct {
	client *resend.Client
}

// Send implements mailer.Session.
func (s *session) Send(ctx context.Context, email *mailer.Email) error {
	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.Headers["Reply-To"],
		Headers: customHeaders(email.Headers),
	}

	if len(email.Attachments) > 0 {
		req.Attachments = convertAttachments(email.Attachments)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", mailer.ErrSendFailed, err)
	}
	return nil
}

// Close implements mailer.Session. Nothing to release for HTTP.
func (s *session) Close() error { return nil }

// customHeaders drops the headers the API carries or generates on its own:
// Reply-To travels in its dedicated request field, and Resend stamps
// Message-ID and Date on submission.
func customHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for key, value := range headers {
		switch key {
		case "Reply-To", "Message-ID", "Date":
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		}
	}
	return result
}
