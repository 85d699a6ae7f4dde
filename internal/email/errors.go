package email

import "errors"

var (
	// ErrNoRecipient is returned when a message has no recipient address.
	ErrNoRecipient = errors.New("no recipient specified")
	// ErrNoSubject is returned when a message has no subject.
	ErrNoSubject = errors.New("no subject specified")
	// ErrNoContent is returned when a message has neither an HTML nor a text body.
	ErrNoContent = errors.New("no content specified")
	// ErrTemplateNotFound is returned when a named template does not exist.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrRenderFailed is returned when a template fails to parse or execute.
	ErrRenderFailed = errors.New("failed to render template")
	// ErrSendFailed is returned when the SMTP session fails at any stage:
	// connect, TLS negotiation, authentication, or transmission.
	ErrSendFailed = errors.New("failed to send email")
)
