package email

import (
	"context"
	"fmt"
)

// Subjects for the templated emails. Fixed strings by design.
const (
	subjectPasswordReset        = "Password Reset Request"
	subjectPasswordResetSuccess = "Password Reset Successful"
)

// ResetExpirationMinutes is how long reset links are advertised as valid.
// The link's actual expiry is enforced by the caller that stores the token.
const ResetExpirationMinutes = 60

// Service exposes the high-level send operations of the email service.
// It is constructed once at startup with its collaborators and carries no
// per-send state, so a single instance serves concurrent requests.
type Service struct {
	sender   Sender
	renderer *Renderer
	from     string
}

// NewService creates an email service sending from the given address.
func NewService(sender Sender, renderer *Renderer, from string) *Service {
	return &Service{
		sender:   sender,
		renderer: renderer,
		from:     from,
	}
}

// SendEmail sends a message with the given subject and HTML body, plus an
// optional plain-text alternative. No templating is involved.
func (s *Service) SendEmail(ctx context.Context, to, subject, html, text string) error {
	return s.send(ctx, &Message{
		From:    s.from,
		To:      to,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
}

// SendPasswordResetEmail sends a password reset link to the user.
// The resetURL already carries the generated token; this service does not
// store tokens. displayName personalizes the greeting and falls back to
// username when empty.
func (s *Service) SendPasswordResetEmail(ctx context.Context, to, username, resetURL, displayName string) error {
	name := displayName
	if name == "" {
		name = username
	}

	html, err := s.renderer.Render(TemplatePasswordReset, PasswordResetData{
		UserName:          name,
		Username:          username,
		ResetURL:          resetURL,
		ExpirationMinutes: ResetExpirationMinutes,
	})
	if err != nil {
		return err
	}

	text := fmt.Sprintf(`Hello %s,

You requested a password reset for the account %s. Visit the link below to choose a new password:

%s

This link will expire in %d minutes.

If you didn't request this, you can safely ignore this email.

---
This is an automated message, please do not reply.`, name, username, resetURL, ResetExpirationMinutes)

	return s.send(ctx, &Message{
		From:    s.from,
		To:      to,
		Subject: subjectPasswordReset,
		HTML:    html,
		Text:    text,
	})
}

// SendPasswordResetSuccessEmail confirms to the user that their password
// was reset. It doubles as a security notification in case the reset was
// not theirs.
func (s *Service) SendPasswordResetSuccessEmail(ctx context.Context, to, username string) error {
	html, err := s.renderer.Render(TemplatePasswordResetSuccess, PasswordResetSuccessData{
		Username: username,
	})
	if err != nil {
		return err
	}

	text := fmt.Sprintf(`Hello %s,

Your password has been reset successfully. You can now sign in with your new password.

If you did not make this change, please contact support immediately.

---
This is an automated message, please do not reply.`, username)

	return s.send(ctx, &Message{
		From:    s.from,
		To:      to,
		Subject: subjectPasswordResetSuccess,
		HTML:    html,
		Text:    text,
	})
}

func (s *Service) send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	return s.sender.Send(ctx, msg)
}
