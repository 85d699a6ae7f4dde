package email

import (
	mail "gopkg.in/mail.v2"
)

// Message is a single outbound email. It is constructed fresh for every
// send, never mutated after construction, and discarded once transmitted.
// Addresses are carried opaquely; no syntax validation happens here.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string // required for every send path
	Text    string // optional plain-text alternative
}

// validate checks that the message is complete enough to transmit.
func (m *Message) validate() error {
	if m.To == "" {
		return ErrNoRecipient
	}
	if m.Subject == "" {
		return ErrNoSubject
	}
	if m.HTML == "" && m.Text == "" {
		return ErrNoContent
	}
	return nil
}

// mime builds the wire-format message. With both bodies present the result
// is multipart/alternative with the plain-text part attached before the
// HTML part, so clients that understand HTML pick the later, richer part.
// With only an HTML body the message has a single text/html part.
func (m *Message) mime() *mail.Message {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)

	switch {
	case m.HTML != "" && m.Text != "":
		msg.SetBody("text/plain", m.Text)
		msg.AddAlternative("text/html", m.HTML)
	case m.HTML != "":
		msg.SetBody("text/html", m.HTML)
	default:
		msg.SetBody("text/plain", m.Text)
	}

	return msg
}
