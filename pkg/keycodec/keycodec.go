// pkg/keycodec/keycodec.go
package keycodec

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Prefix is prepended to every externally presented API key.
const Prefix = "wg_"

// DefaultSecretLength is the number of random bytes drawn for a new secret.
const DefaultSecretLength = 32

// ErrMalformedKey is returned when a presented key does not match the
// <Prefix><recordID>_<secret> shape. Malformed keys are never looked up.
var ErrMalformedKey = errors.New("malformed api key")

// KeyMaterial holds a freshly generated secret and its SHA-256 digest.
// The plaintext secret is handed to the caller exactly once; only the
// digest is ever persisted.
type KeyMaterial struct {
	Secret       string
	HashedSecret string
}

// Generate draws secretLength cryptographically random bytes, hex-encodes
// them as the secret, and returns the secret together with its SHA-256
// hex digest. A non-positive secretLength falls back to DefaultSecretLength.
func Generate(secretLength int) (KeyMaterial, error) {
	if secretLength <= 0 {
		secretLength = DefaultSecretLength
	}

	buf := make([]byte, secretLength)
	if _, err := rand.Read(buf); err != nil {
		return KeyMaterial{}, fmt.Errorf("failed to draw random secret: %w", err)
	}

	secret := hex.EncodeToString(buf)
	digest := sha256.Sum256([]byte(secret))

	return KeyMaterial{
		Secret:       secret,
		HashedSecret: hex.EncodeToString(digest[:]),
	}, nil
}

// Verify hashes the candidate secret and compares it against the stored
// digest in constant time.
func Verify(candidateSecret, hashedSecret string) bool {
	digest := sha256.Sum256([]byte(candidateSecret))
	candidate := hex.EncodeToString(digest[:])
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hashedSecret)) == 1
}

// Encode builds the externally presented key: <Prefix><recordID>_<secret>.
func Encode(recordID, secret string) string {
	return Prefix + recordID + "_" + secret
}

// Decode splits a presented key back into its record identifier and secret.
// The prefix must be present and the remainder must split on exactly one
// underscore into two non-empty parts; anything else is ErrMalformedKey.
func Decode(presented string) (recordID, secret string, err error) {
	if !strings.HasPrefix(presented, Prefix) {
		return "", "", ErrMalformedKey
	}

	parts := strings.Split(strings.TrimPrefix(presented, Prefix), "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrMalformedKey
	}

	return parts[0], parts[1], nil
}
