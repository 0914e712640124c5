// pkg/keycodec/keycodec_test.go
package keycodec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("DefaultLength", func(t *testing.T) {
		material, err := Generate(0)
		require.NoError(t, err)

		// 32 random bytes hex-encode to 64 characters.
		assert.Len(t, material.Secret, 64)
		assert.Len(t, material.HashedSecret, 64) // sha256 hex digest
	})

	t.Run("ExplicitLength", func(t *testing.T) {
		material, err := Generate(16)
		require.NoError(t, err)
		assert.Len(t, material.Secret, 32)
	})

	t.Run("SecretsAreUnique", func(t *testing.T) {
		a, err := Generate(32)
		require.NoError(t, err)
		b, err := Generate(32)
		require.NoError(t, err)
		assert.NotEqual(t, a.Secret, b.Secret)
		assert.NotEqual(t, a.HashedSecret, b.HashedSecret)
	})
}

func TestVerify(t *testing.T) {
	material, err := Generate(32)
	require.NoError(t, err)

	t.Run("ExactSecretMatches", func(t *testing.T) {
		assert.True(t, Verify(material.Secret, material.HashedSecret))
	})

	t.Run("AnySingleCharacterChangeFails", func(t *testing.T) {
		for i := 0; i < len(material.Secret); i++ {
			flipped := []byte(material.Secret)
			if flipped[i] == '0' {
				flipped[i] = '1'
			} else {
				flipped[i] = '0'
			}
			assert.False(t, Verify(string(flipped), material.HashedSecret),
				"flipped secret at position %d should not verify", i)
		}
	})

	t.Run("EmptyCandidateFails", func(t *testing.T) {
		assert.False(t, Verify("", material.HashedSecret))
	})
}

func TestEncodeDecode(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		presented := Encode("abc123", "deadbeef")
		assert.True(t, strings.HasPrefix(presented, Prefix))

		recordID, secret, err := Decode(presented)
		require.NoError(t, err)
		assert.Equal(t, "abc123", recordID)
		assert.Equal(t, "deadbeef", secret)
	})

	t.Run("MissingPrefix", func(t *testing.T) {
		_, _, err := Decode("wrongprefix_abc_def")
		assert.ErrorIs(t, err, ErrMalformedKey)
	})

	t.Run("NoSeparator", func(t *testing.T) {
		_, _, err := Decode(Prefix + "onlyonepart")
		assert.ErrorIs(t, err, ErrMalformedKey)
	})

	t.Run("TooManySeparators", func(t *testing.T) {
		_, _, err := Decode(Prefix + "abc_def_ghi")
		assert.ErrorIs(t, err, ErrMalformedKey)
	})

	t.Run("EmptyRecordID", func(t *testing.T) {
		_, _, err := Decode(Prefix + "_secret")
		assert.ErrorIs(t, err, ErrMalformedKey)
	})

	t.Run("EmptySecret", func(t *testing.T) {
		_, _, err := Decode(Prefix + "record_")
		assert.ErrorIs(t, err, ErrMalformedKey)
	})

	t.Run("EmptyString", func(t *testing.T) {
		_, _, err := Decode("")
		assert.ErrorIs(t, err, ErrMalformedKey)
	})
}
