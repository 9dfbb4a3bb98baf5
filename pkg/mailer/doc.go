// Package mailer defines the transport-ready message model and the
// capability boundary the dispatch engine sends through.
//
// The package separates message construction from delivery: Build turns
// rendered content into an Email with a complete, standards-compliant
// header set, and Transport/Session abstract the authenticated channel the
// message travels over. Adapters live in subpackages (smtp, resend) so the
// engine never depends on a concrete provider.
//
// # Message construction
//
//	email, err := mailer.Build(rendered, attachments,
//		mailer.Identity{Name: "Ops", Address: "ops@example.com"},
//		"dan@example.com", "smtp.example.com")
//
// Build synthesizes From, Reply-To, To, Subject, Date, and a Message-ID
// that is unique per call: resending to the same recipient after a failure
// produces a new identity, never a duplicate of the failed message.
//
// # Transport
//
// A Transport dials and authenticates once per batch, returning a Session
// that delivers any number of messages before Close. Connection and
// authentication failures are fatal for a batch; per-message send failures
// are not.
package mailer
