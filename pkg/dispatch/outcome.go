package dispatch

// Outcome is the result of one recipient's send attempt. A nil Err means
// the message was accepted by the transport.
type Outcome struct {
	Err   error
	Email string
	Index int
}

// Ok reports whether the send attempt succeeded.
func (o Outcome) Ok() bool { return o.Err == nil }

// Reason returns the human-readable failure reason, or "" on success.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Summary is the terminal record of a batch. Exactly one Summary ends
// every event stream, whatever path the batch took.
type Summary struct {
	// Cause explains an aborted batch (connect or auth failure). Nil
	// otherwise.
	Cause error

	Sent   int
	Failed int

	// Aborted means session establishment failed and zero recipients
	// were attempted.
	Aborted bool

	// Cancelled means the caller stopped the batch before the last
	// recipient. Outcomes emitted before cancellation remain valid.
	Cancelled bool
}

// Event is one element of the stream Run returns: either a per-recipient
// Outcome or the terminal Summary, never both.
type Event struct {
	Outcome *Outcome
	Summary *Summary
}
