package email

import (
	"context"
	"errors"
	"testing"
)

func TestMockSender_Send(t *testing.T) {
	sender := NewMockSender()
	ctx := context.Background()

	// Send first message
	err := sender.Send(ctx, &Message{
		From:    "noreply@example.com",
		To:      "user1@example.com",
		Subject: "First",
		HTML:    "<p>one</p>",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	// Send second message
	err = sender.Send(ctx, &Message{
		From:    "noreply@example.com",
		To:      "user2@example.com",
		Subject: "Second",
		HTML:    "<p>two</p>",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	// Verify messages were recorded
	messages := sender.SentMessages()
	if len(messages) != 2 {
		t.Fatalf("SentMessages() count = %d, want 2", len(messages))
	}

	if messages[0].To != "user1@example.com" {
		t.Errorf("Message[0].To = %q, want %q", messages[0].To, "user1@example.com")
	}
	if messages[0].Subject != "First" {
		t.Errorf("Message[0].Subject = %q, want %q", messages[0].Subject, "First")
	}
	if messages[1].To != "user2@example.com" {
		t.Errorf("Message[1].To = %q, want %q", messages[1].To, "user2@example.com")
	}
}

func TestMockSender_SendFunc(t *testing.T) {
	sender := NewMockSender()
	wantErr := errors.New("simulated failure")
	sender.SendFunc = func(_ context.Context, _ *Message) error {
		return wantErr
	}

	err := sender.Send(context.Background(), &Message{To: "user@example.com", HTML: "<p>hi</p>"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Send() error = %v, want %v", err, wantErr)
	}

	// The message is still recorded even when delivery is made to fail
	if len(sender.SentMessages()) != 1 {
		t.Errorf("SentMessages() count = %d, want 1", len(sender.SentMessages()))
	}
}

func TestMockSender_Reset(t *testing.T) {
	sender := NewMockSender()

	_ = sender.Send(context.Background(), &Message{To: "user@example.com", HTML: "<p>hi</p>"})

	if len(sender.SentMessages()) != 1 {
		t.Error("Expected 1 message before reset")
	}

	sender.Reset()

	if len(sender.SentMessages()) != 0 {
		t.Error("Expected 0 messages after reset")
	}
}

func TestMockSender_ConcurrentAccess(t *testing.T) {
	sender := NewMockSender()
	ctx := context.Background()

	// Test concurrent writes
	const numGoroutines = 10
	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			_ = sender.Send(ctx, &Message{To: "user@example.com", HTML: "<p>hi</p>"})
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for i := 0; i < numGoroutines; i++ {
		<-done
	}

	if len(sender.SentMessages()) != numGoroutines {
		t.Errorf("SentMessages() count = %d, want %d", len(sender.SentMessages()), numGoroutines)
	}
}

func TestMockSender_GetterReturnsCopy(t *testing.T) {
	sender := NewMockSender()

	_ = sender.Send(context.Background(), &Message{To: "user@example.com", HTML: "<p>hi</p>"})

	messages1 := sender.SentMessages()
	messages2 := sender.SentMessages()

	// Modify first slice
	if len(messages1) > 0 {
		messages1[0].To = "modified@example.com"
	}

	// Verify second slice wasn't affected (proving it's a copy)
	if len(messages2) > 0 && messages2[0].To != "user@example.com" {
		t.Error("Getter should return a copy, not a reference to internal slice")
	}

	// Verify internal state wasn't modified
	messages3 := sender.SentMessages()
	if len(messages3) > 0 && messages3[0].To != "user@example.com" {
		t.Error("Modifying returned slice should not affect internal state")
	}
}

func TestSenderImplementations(_ *testing.T) {
	var _ Sender = (*MockSender)(nil)
	var _ Sender = (*ConsoleSender)(nil)
	var _ Sender = (*SMTPSender)(nil)
}
