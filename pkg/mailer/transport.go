package mailer

import "context"

// Transport is the capability the dispatch engine depends on: establish one
// authenticated, encrypted session and deliver messages through it. Any
// implementation providing authenticated-submission semantics qualifies.
type Transport interface {
	// Connect dials the endpoint and authenticates. Failures here are
	// fatal for a whole batch: the engine makes no per-recipient attempts
	// on a session it could not establish.
	Connect(ctx context.Context) (Session, error)
}

// Session is an established submission channel. It is exclusively owned by
// one batch at a time and is not safe for concurrent use.
type Session interface {
	// Send delivers one message. The error describes a per-message
	// rejection; the session stays usable for subsequent messages.
	Send(ctx context.Context, email *Email) error

	// Close releases the session. Safe to call after a failed Send.
	Close() error
}
