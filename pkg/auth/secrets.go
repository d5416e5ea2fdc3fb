package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const (
	// OTPLength is the number of digits in a one-time password.
	OTPLength = 6
	// ResetTokenPrefix marks password reset tokens.
	ResetTokenPrefix = "rp_"
	resetTokenBytes  = 32
)

type secretGenerator struct{}

// NewSecretGenerator creates a SecretGenerator backed by crypto/rand.
func NewSecretGenerator() SecretGenerator {
	return &secretGenerator{}
}

// GenerateOTP returns OTPLength uniformly random decimal digits.
func (g *secretGenerator) GenerateOTP() (string, error) {
	var b strings.Builder
	b.Grow(OTPLength)
	ten := big.NewInt(10)
	for i := 0; i < OTPLength; i++ {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate otp digit: %w", err)
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}

// GenerateResetToken returns a token in the format rp_{64 hex chars}.
func (g *secretGenerator) GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return ResetTokenPrefix + hex.EncodeToString(buf), nil
}

// Hash returns the SHA-256 hash of the secret as a hex string.
func (g *secretGenerator) Hash(secret string) string {
	hash := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(hash[:])
}

// CompareHashes securely compares two hashes using constant-time comparison.
func (g *secretGenerator) CompareHashes(hash1, hash2 string) bool {
	return subtle.ConstantTimeCompare([]byte(hash1), []byte(hash2)) == 1
}
