package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// tokenLength is the number of random bytes behind each PKCE verifier and
// state value. 32 bytes gives 256 bits of entropy; the base64url encoding is
// 43 characters, which also satisfies the RFC 7636 minimum verifier length.
const tokenLength = 32

// NewVerifier returns a fresh PKCE code verifier.
// Randomness failure is treated as fatal: there is no meaningful way to
// continue an OAuth flow without entropy.
func NewVerifier() string {
	return randomToken()
}

// NewState returns a fresh opaque OAuth state value.
func NewState() string {
	return randomToken()
}

func randomToken() string {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		panic("auth: crypto/rand unavailable: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// ChallengeS256 derives the S256 code challenge for a verifier:
// base64url, no padding, of the SHA-256 digest.
func ChallengeS256(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// VerifyState compares the state stored in the binding cookie against the
// state returned by the provider. The comparison is constant-time for
// equal-length inputs; a length mismatch or an empty value is an immediate
// failure without touching the buffers.
func VerifyState(expected, actual string) bool {
	if expected == "" || actual == "" {
		return false
	}
	if len(expected) != len(actual) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
