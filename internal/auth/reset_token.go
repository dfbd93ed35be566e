package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// ResetTokenExpiry is how long a password reset token stays valid.
const ResetTokenExpiry = 24 * time.Hour

const resetTokenBytes = 32

// GenerateResetToken returns a cryptographically random URL-safe token for
// the password reset flow.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
