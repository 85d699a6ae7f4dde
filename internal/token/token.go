// Package token generates password reset tokens for the email service.
//
// Tokens are opaque: this service never stores or verifies them. The caller
// receives the token alongside the send confirmation and is responsible for
// persisting it with an expiry and a username association.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// DefaultLength is the default entropy for reset tokens (32 bytes = 256 bits)
	DefaultLength = 32
)

var (
	// ErrGeneration is returned when token generation fails
	ErrGeneration = errors.New("failed to generate token")
)

// GenerateResetToken generates a cryptographically secure random token.
// Returns a base64 URL-encoded string safe to embed directly in a URL
// query parameter without percent-encoding.
func GenerateResetToken() (string, error) {
	return GenerateResetTokenWithLength(DefaultLength)
}

// GenerateResetTokenWithLength generates a cryptographically secure random
// token with a specified byte length. The resulting base64 string will be
// longer. There is no fallback source: if the secure random source fails,
// the error is returned rather than degrading to weaker randomness.
func GenerateResetTokenWithLength(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: length must be positive", ErrGeneration)
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	// Use URL-safe base64 encoding (no padding)
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
