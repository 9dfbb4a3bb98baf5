package dispatch

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// Batch is the read-only input of one dispatch run. The template and its
// recipient list must not be mutated while the batch is in flight; the
// engine defines no protocol for concurrent edits.
type Batch struct {
	Template *template.Template

	// Attachments are the template's references resolved to payloads,
	// shared across every recipient of the batch.
	Attachments []mailer.Attachment

	// From identifies the sender for the From and Reply-To headers.
	From mailer.Identity

	// Domain scopes generated Message-IDs, usually the submission host.
	Domain string
}

// Clock pauses for d or until ctx is cancelled, returning the context's
// error when cancellation won.
type Clock func(ctx context.Context, d time.Duration) error

// Dispatcher sends batches over a Transport. It is stateless between runs;
// the same Dispatcher can run any number of batches sequentially.
type Dispatcher struct {
	transport mailer.Transport
	logger    *log.Logger
	clock     Clock
	delay     time.Duration
}

// New creates a Dispatcher for the given transport.
func New(transport mailer.Transport, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		transport: transport,
		logger:    log.New(io.Discard),
		clock:     sleep,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run starts the batch on a background worker and returns the event
// stream: one Outcome per attempted recipient in strict index order,
// terminated by exactly one Summary, after which the channel is closed.
// The channel is buffered for the whole batch, so a slow consumer never
// blocks the send loop.
func (d *Dispatcher) Run(ctx context.Context, batch Batch) <-chan Event {
	events := make(chan Event, len(batch.Template.Recipients)+1)
	go d.run(ctx, batch, events)
	return events
}

func (d *Dispatcher) run(ctx context.Context, batch Batch, events chan<- Event) {
	defer close(events)

	session, err := d.transport.Connect(ctx)
	if err != nil {
		d.logger.Error("batch aborted", "err", err)
		events <- Event{Summary: &Summary{Aborted: true, Cause: err}}
		return
	}
	defer session.Close()

	var sent, failed int
	recipients := batch.Template.Recipients

	for i, rcpt := range recipients {
		if ctx.Err() != nil {
			events <- Event{Summary: &Summary{Sent: sent, Failed: failed, Cancelled: true}}
			return
		}

		err := d.sendOne(ctx, session, batch, rcpt)
		if err != nil {
			failed++
			d.logger.Debug("send failed", "index", i, "email", rcpt.Email, "err", err)
		} else {
			sent++
			d.logger.Debug("sent", "index", i, "email", rcpt.Email)
		}
		events <- Event{Outcome: &Outcome{Index: i, Email: rcpt.Email, Err: err}}

		// Uniform throttle after every attempt except the last, success
		// or failure, to keep the send rate under provider limits.
		if i < len(recipients)-1 && d.delay > 0 {
			if err := d.clock(ctx, d.delay); err != nil {
				events <- Event{Summary: &Summary{Sent: sent, Failed: failed, Cancelled: true}}
				return
			}
		}
	}

	events <- Event{Summary: &Summary{Sent: sent, Failed: failed}}
}

// Send delivers to a single recipient through the full pipeline with no
// throttle: a batch of size one has nothing to pace.
func (d *Dispatcher) Send(ctx context.Context, batch Batch, rcpt template.Recipient) error {
	session, err := d.transport.Connect(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	return d.sendOne(ctx, session, batch, rcpt)
}

// sendOne runs the per-recipient pipeline: render, build, submit.
func (d *Dispatcher) sendOne(ctx context.Context, session mailer.Session, batch Batch, rcpt template.Recipient) error {
	rendered := template.Render(batch.Template, rcpt.Args)

	email, err := mailer.Build(rendered, batch.Attachments, batch.From, rcpt.Email, batch.Domain)
	if err != nil {
		return err
	}

	return session.Send(ctx, email)
}

// sleep is the default Clock: a timer raced against ctx cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
