package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	mail "gopkg.in/mail.v2"
)

// SMTPConfig holds the connection settings for the SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int // 465 uses implicit TLS; other ports negotiate STARTTLS when offered
	Username string
	Password string
	Timeout  time.Duration // whole-session deadline; zero keeps the dialer default (30s)
}

// SMTPSender delivers messages through an authenticated SMTP relay.
//
// Each Send opens its own connection, authenticates, transmits exactly one
// message, and closes the connection whether or not transmission succeeded.
// Connections are never pooled or reused, and a failed send is never
// retried; retry policy belongs to the caller.
type SMTPSender struct {
	dialer *mail.Dialer
	host   string
}

// NewSMTPSender creates a sender for the given relay configuration.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.Timeout > 0 {
		dialer.Timeout = cfg.Timeout
	}
	// One attempt per send; a broken connection is reported, not redialed.
	dialer.RetryFailure = false

	return &SMTPSender{
		dialer: dialer,
		host:   cfg.Host,
	}
}

// Send transmits one message over a fresh SMTP session. Every failure mode
// (connect, TLS negotiation, authentication, recipient rejection, timeout)
// is caught here, logged with the recipient, and returned as an error
// wrapping ErrSendFailed.
func (s *SMTPSender) Send(_ context.Context, msg *Message) error {
	m := msg.mime()
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host))

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Error sending email to %s: %v", msg.To, err)
		return errors.Join(ErrSendFailed, err)
	}

	log.Printf("Email sent successfully to %s", msg.To)
	return nil
}
