package email

import (
	"context"
	"log"
)

// ConsoleSender is a Sender that logs messages to the console instead of
// delivering them. This is useful for local development without SMTP
// credentials.
type ConsoleSender struct{}

// NewConsoleSender creates a new console-based sender.
func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

// Send logs the message to the console.
func (s *ConsoleSender) Send(_ context.Context, msg *Message) error {
	log.Println("========================================")
	log.Println("📧 OUTBOUND EMAIL (Console Mode)")
	log.Println("========================================")
	log.Printf("To: %s", msg.To)
	log.Printf("From: %s", msg.From)
	log.Printf("Subject: %s", msg.Subject)
	log.Println("----------------------------------------")
	if msg.Text != "" {
		log.Println(msg.Text)
	} else {
		log.Println(msg.HTML)
	}
	log.Println("========================================")

	return nil
}
