package auth

//go:generate mockgen -destination=mocks/mock_auth.go -package=mocks tour-catalog/pkg/auth TokenManager,SecretGenerator

// TokenManager defines the interface for JWT token operations.
type TokenManager interface {
	// GenerateToken creates a new JWT token for a user with the given role.
	GenerateToken(userID, role string) (string, error)
	// ValidateToken parses and validates a JWT token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// SecretGenerator issues the one-time secrets of the password reset flow.
type SecretGenerator interface {
	// GenerateOTP returns a numeric one-time password.
	GenerateOTP() (string, error)
	// GenerateResetToken returns an opaque reset token.
	GenerateResetToken() (string, error)
	// Hash returns the SHA-256 hash of a secret.
	Hash(secret string) string
	// CompareHashes securely compares two secret hashes.
	CompareHashes(hash1, hash2 string) bool
}

// Ensure implementations satisfy the interfaces
var (
	_ TokenManager    = (*JWTManager)(nil)
	_ SecretGenerator = (*secretGenerator)(nil)
)
