package mailer

import "errors"

var (
	// ErrInvalidAddress indicates the recipient address is not a
	// syntactically valid RFC 5322 address.
	ErrInvalidAddress = errors.New("invalid recipient address")

	// ErrConnectionFailed indicates the transport could not establish a
	// connection to the submission endpoint.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrAuthFailed indicates the submission endpoint rejected the
	// configured credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrSendFailed indicates the endpoint rejected or failed to accept a
	// message on an established session.
	ErrSendFailed = errors.New("failed to send email")
)
