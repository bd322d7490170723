package secrets_test

import (
	"crypto/rand"
	"testing"

	"github.com/propkit/propkit/pkg/propkit/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAEAD(t *testing.T) *secrets.AEAD {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	codec, err := secrets.NewAEAD(key)
	require.NoError(t, err)
	return codec
}

// TestNewAEADKeySize verifies key length validation.
func TestNewAEADKeySize(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := secrets.NewAEAD(make([]byte, size))
		assert.Error(t, err, "key size %d must be rejected", size)
	}

	_, err := secrets.NewAEAD(make([]byte, 32))
	assert.NoError(t, err)
}

// TestAEADRoundTrip verifies seal/open round trips, including values with
// commas and quotes that later flow through the multi-value parser.
func TestAEADRoundTrip(t *testing.T) {
	codec := newTestAEAD(t)

	tests := []string{
		"",
		"password",
		"a,b,c",
		`"a,b",c`,
		"value with spaces",
	}

	for _, plain := range tests {
		sealed, err := codec.Encrypt(plain)
		require.NoError(t, err)
		assert.True(t, codec.Encrypted(sealed))

		got, err := codec.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}
}

// TestAEADNonceUniqueness verifies two encryptions of the same plaintext differ.
func TestAEADNonceUniqueness(t *testing.T) {
	codec := newTestAEAD(t)

	a, err := codec.Encrypt("same")
	require.NoError(t, err)
	b, err := codec.Encrypt("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestAEADDecryptFailures verifies corrupt and foreign payloads fail loudly.
func TestAEADDecryptFailures(t *testing.T) {
	codec := newTestAEAD(t)

	// Not base64.
	_, err := codec.Decrypt("{xchacha20}!!!")
	assert.Error(t, err)

	// Too short to contain a nonce.
	_, err = codec.Decrypt("{xchacha20}Zm9v")
	assert.ErrorIs(t, err, secrets.ErrShortPayload)

	// Sealed under a different key.
	other := newTestAEAD(t)
	sealed, err := other.Encrypt("secret")
	require.NoError(t, err)
	_, err = codec.Decrypt(sealed)
	assert.Error(t, err)

	// Plaintext passes through untouched.
	v, err := codec.Decrypt("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", v)
}
