// Package email provides email composition and delivery for the email service.
//
// The package is built from small pieces: Message is one outbound email,
// Renderer produces HTML bodies from named templates, Sender delivers a
// composed message, and Service ties them together into the high-level send
// operations the HTTP layer calls. Nothing in this package holds state
// between sends; every message is composed, transmitted, and discarded
// within a single call.
package email

import "context"

// Sender delivers one composed message to its recipient.
// Implementations include SMTPSender for production, ConsoleSender for
// local development, and MockSender for testing.
type Sender interface {
	// Send transmits a single message. It returns an error wrapping
	// ErrSendFailed when delivery fails; it never panics. Failures are
	// logged with the offending recipient by the implementation.
	Send(ctx context.Context, msg *Message) error
}
