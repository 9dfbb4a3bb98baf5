package mailer

import "fmt"

// Identity is the sender of a batch: a display name and the mailbox the
// message is submitted from.
type Identity struct {
	Name    string
	Address string
}

// String formats the identity in RFC 5322 address form, "Name <email>",
// or just the address when no display name is set.
func (id Identity) String() string {
	if id.Name == "" {
		return id.Address
	}
	return fmt.Sprintf("%s <%s>", id.Name, id.Address)
}

// Email is a fully-prepared message ready for a Session to deliver. The
// Text part is the low-capability fallback and must precede HTML in the
// multipart alternative container; clients render the last alternative
// they understand, so HTML goes last.
type Email struct {
	Headers     map[string]string // Synthesized headers (Message-ID, Date, Reply-To)
	From        string            // RFC 5322 sender, "Name <email>"
	To          string            // Recipient address
	Subject     string            // Rendered subject
	HTML        string            // HTML body content
	Text        string            // Plain text alternative
	Attachments []Attachment      // File attachments, shared across a batch
}

// Attachment is a binary part attached to every message of a batch. The
// payload is read-only; per-recipient variation is not supported.
type Attachment struct {
	Filename string
	Content  []byte
}
