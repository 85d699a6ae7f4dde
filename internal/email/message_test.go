package email

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderMIME writes the wire format of a message to a string for inspection.
func renderMIME(t *testing.T, msg *Message) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.mime().WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestMessageMIME_HTMLOnly(t *testing.T) {
	msg := &Message{
		From:    "noreply@example.com",
		To:      "user@example.com",
		Subject: "Hello",
		HTML:    "<h1>Hello</h1>",
	}

	raw := renderMIME(t, msg)

	assert.Contains(t, raw, "From: noreply@example.com")
	assert.Contains(t, raw, "To: user@example.com")
	assert.Contains(t, raw, "Subject: Hello")

	// A single HTML part, no multipart wrapper
	assert.Contains(t, raw, "Content-Type: text/html")
	assert.NotContains(t, raw, "multipart/alternative")
	assert.NotContains(t, raw, "Content-Type: text/plain")
}

func TestMessageMIME_TextAndHTML(t *testing.T) {
	msg := &Message{
		From:    "noreply@example.com",
		To:      "user@example.com",
		Subject: "Hello",
		HTML:    "<h1>Hello</h1>",
		Text:    "Hello",
	}

	raw := renderMIME(t, msg)

	assert.Contains(t, raw, "multipart/alternative")

	// Exactly two parts: the plain-text alternative attached before the
	// HTML part, so clients pick the last acceptable (richest) part.
	textAt := strings.Index(raw, "Content-Type: text/plain")
	htmlAt := strings.Index(raw, "Content-Type: text/html")
	require.NotEqual(t, -1, textAt, "missing text/plain part")
	require.NotEqual(t, -1, htmlAt, "missing text/html part")
	assert.Less(t, textAt, htmlAt, "text part must precede html part")

	assert.Equal(t, 1, strings.Count(raw, "Content-Type: text/plain"))
	assert.Equal(t, 1, strings.Count(raw, "Content-Type: text/html"))
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr error
	}{
		{
			name: "valid html only",
			msg:  Message{To: "user@example.com", Subject: "Hi", HTML: "<p>hi</p>"},
		},
		{
			name: "valid text only",
			msg:  Message{To: "user@example.com", Subject: "Hi", Text: "hi"},
		},
		{
			name:    "missing recipient",
			msg:     Message{Subject: "Hi", HTML: "<p>hi</p>"},
			wantErr: ErrNoRecipient,
		},
		{
			name:    "missing subject",
			msg:     Message{To: "user@example.com", HTML: "<p>hi</p>"},
			wantErr: ErrNoSubject,
		},
		{
			name:    "missing content",
			msg:     Message{To: "user@example.com", Subject: "Hi"},
			wantErr: ErrNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
