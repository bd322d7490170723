package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const aeadPrefix = "xchacha20"

// ErrShortPayload indicates an encrypted payload too short to contain a nonce.
var ErrShortPayload = errors.New("encrypted payload shorter than nonce")

// AEAD encrypts and decrypts "{xchacha20}payload" values with
// XChaCha20-Poly1305. The payload is base64(nonce || ciphertext) with a
// random nonce generated per Encrypt call.
type AEAD struct {
	aead cipher.AEAD
}

// NewAEAD builds a codec from a 32-byte key.
func NewAEAD(key []byte) (*AEAD, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("aead codec: key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &AEAD{aead: aead}, nil
}

// Encrypted reports whether value carries the {xchacha20} prefix.
func (a *AEAD) Encrypted(value string) bool {
	return Prefix(value) == aeadPrefix
}

// Encrypt seals plain into the {xchacha20} form.
func (a *AEAD) Encrypt(plain string) (string, error) {
	nonce := make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}
	sealed := a.aead.Seal(nonce, nonce, []byte(plain), nil)
	return "{" + aeadPrefix + "}" + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens an {xchacha20} value; other values pass through unchanged.
func (a *AEAD) Decrypt(value string) (string, error) {
	if !a.Encrypted(value) {
		return value, nil
	}
	sealed, err := base64.StdEncoding.DecodeString(payload(value))
	if err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}
	if len(sealed) < a.aead.NonceSize() {
		return "", ErrShortPayload
	}
	nonce, ciphertext := sealed[:a.aead.NonceSize()], sealed[a.aead.NonceSize():]
	plain, err := a.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("open ciphertext: %w", err)
	}
	return string(plain), nil
}
