// Package smtp adapts the mailer Transport boundary to an authenticated
// SMTP submission channel with TLS, via gomail.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/textproto"

	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

// Transport implements mailer.Transport over SMTP. One Connect call dials,
// negotiates TLS, and authenticates; the resulting session carries every
// message of a batch.
type Transport struct {
	dialer *gomail.Dialer
}

// New creates an SMTP transport from the given configuration.
func New(cfg Config) *Transport {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.SSL
	return &Transport{dialer: d}
}

// Connect implements mailer.Transport. Authentication rejections are
// reported as mailer.ErrAuthFailed, everything else during establishment
// as mailer.ErrConnectionFailed.
func (t *Transport) Connect(_ context.Context) (mailer.Session, error) {
	sc, err := t.dialer.Dial()
	if err != nil {
		return nil, classifyDialError(err)
	}
	return &session{sc: sc}, nil
}

// classifyDialError separates credential rejections from connectivity
// failures using the SMTP reply code when one is available.
func classifyDialError(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535, 538:
			return fmt.Errorf("%w: %v", mailer.ErrAuthFailed, err)
		}
	}
	return fmt.Errorf("%w: %v", mailer.ErrConnectionFailed, err)
}

// session wraps an authenticated gomail SendCloser.
type session struct {
	sc gomail.SendCloser
}

// Send implements mailer.Session.
func (s *session) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := gomail.Send(s.sc, toGomail(email)); err != nil {
		return fmt.Errorf("%w: %v", mailer.ErrSendFailed, err)
	}
	return nil
}

// Close implements mailer.Session.
func (s *session) Close() error {
	return s.sc.Close()
}

// toGomail converts the transport-agnostic Email into a wire message. The
// text part is set first and the HTML alternative second so capable clients
// prefer HTML while everything else falls back to plain text.
func toGomail(email *mailer.Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", email.From)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	for key, value := range email.Headers {
		m.SetHeader(key, value)
	}

	m.SetBody("text/plain", email.Text)
	m.AddAlternative("text/html", email.HTML)

	for _, a := range email.Attachments {
		content := a.Content
		m.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	return m
}
