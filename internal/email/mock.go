package email

import (
	"context"
	"sync"
)

// MockSender is a Sender implementation for testing.
// It records sent messages in memory for verification in tests.
type MockSender struct {
	mu       sync.Mutex
	messages []Message

	// SendFunc, when set, is called after the message is recorded and its
	// error is returned. Use it to simulate delivery failures.
	SendFunc func(ctx context.Context, msg *Message) error
}

// NewMockSender creates a new mock sender.
func NewMockSender() *MockSender {
	return &MockSender{
		messages: make([]Message, 0),
	}
}

// Send records the message.
func (s *MockSender) Send(ctx context.Context, msg *Message) error {
	s.mu.Lock()
	s.messages = append(s.messages, *msg)
	s.mu.Unlock()

	if s.SendFunc != nil {
		return s.SendFunc(ctx, msg)
	}
	return nil
}

// SentMessages returns a copy of all recorded messages.
func (s *MockSender) SentMessages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return messages
}

// Reset clears all recorded messages. Useful for test cleanup.
func (s *MockSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make([]Message, 0)
}
