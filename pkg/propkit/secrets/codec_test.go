package secrets_test

import (
	"testing"

	"github.com/propkit/propkit/pkg/propkit/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrefix verifies transform-name extraction.
func TestPrefix(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"{b64}Zm9v", "b64"},
		{"{xchacha20}abc", "xchacha20"},
		{"plain", ""},
		{"", ""},
		{"{}payload", ""},
		{"{unclosed", ""},
		{"x{b64}y", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, secrets.Prefix(tt.value))
		})
	}
}

// TestNop verifies the no-op codec passes everything through.
func TestNop(t *testing.T) {
	codec := secrets.Nop{}
	assert.False(t, codec.Encrypted("{b64}Zm9v"))

	v, err := codec.Decrypt("{b64}Zm9v")
	require.NoError(t, err)
	assert.Equal(t, "{b64}Zm9v", v)
}

// TestBase64 verifies the {b64} round trip and pass-through behavior.
func TestBase64(t *testing.T) {
	codec := secrets.Base64{}

	wrapped := codec.Encrypt("s3cr3t")
	assert.True(t, codec.Encrypted(wrapped))

	plain, err := codec.Decrypt(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", plain)

	// Plaintext passes through unchanged.
	v, err := codec.Decrypt("not wrapped")
	require.NoError(t, err)
	assert.Equal(t, "not wrapped", v)

	// Corrupt payload fails.
	_, err = codec.Decrypt("{b64}!!!not-base64!!!")
	assert.Error(t, err)
}

// TestChain verifies prefix dispatch across codecs.
func TestChain(t *testing.T) {
	key := make([]byte, 32)
	aead, err := secrets.NewAEAD(key)
	require.NoError(t, err)

	chain := secrets.Chain{secrets.Base64{}, aead}

	b64 := secrets.Base64{}.Encrypt("alpha")
	sealed, err := aead.Encrypt("beta")
	require.NoError(t, err)

	assert.True(t, chain.Encrypted(b64))
	assert.True(t, chain.Encrypted(sealed))
	assert.False(t, chain.Encrypted("plain"))

	v, err := chain.Decrypt(b64)
	require.NoError(t, err)
	assert.Equal(t, "alpha", v)

	v, err = chain.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "beta", v)

	// Unknown prefixes are treated as plaintext.
	v, err = chain.Decrypt("{rsa}abc")
	require.NoError(t, err)
	assert.Equal(t, "{rsa}abc", v)
}
