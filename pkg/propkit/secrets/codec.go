package secrets

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Codec detects and reverses an encryption transform applied to a
// configuration value. Encrypted values carry a "{name}payload" prefix
// naming the transform; anything else is plaintext.
//
// Decrypt must return plaintext values unchanged, so callers can run every
// resolved value through the codec unconditionally.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Encrypted reports whether value is in encrypted form for this codec.
	Encrypted(value string) bool

	// Decrypt reverses the transform. Values this codec does not recognize
	// as encrypted are returned unchanged.
	Decrypt(value string) (string, error)
}

// Prefix extracts the transform name from a "{name}payload" value.
// Returns "" when the value carries no prefix.
func Prefix(value string) string {
	if !strings.HasPrefix(value, "{") {
		return ""
	}
	end := strings.Index(value, "}")
	if end <= 1 {
		return ""
	}
	return value[1:end]
}

// payload returns everything after the "{name}" prefix.
func payload(value string) string {
	end := strings.Index(value, "}")
	return value[end+1:]
}

// Nop treats every value as plaintext. It is the default codec of a
// resolver constructed without one.
type Nop struct{}

// Encrypted always reports false.
func (Nop) Encrypted(string) bool { return false }

// Decrypt returns the value unchanged.
func (Nop) Decrypt(value string) (string, error) { return value, nil }

// Base64 reverses "{b64}payload" values. It is obfuscation, not encryption:
// no key is involved. Kept for compatibility with stores that shipped
// base64-wrapped values.
type Base64 struct{}

const base64Prefix = "b64"

// Encrypted reports whether value carries the {b64} prefix.
func (Base64) Encrypted(value string) bool {
	return Prefix(value) == base64Prefix
}

// Encrypt wraps plain in the {b64} form.
func (Base64) Encrypt(plain string) string {
	return "{" + base64Prefix + "}" + base64.StdEncoding.EncodeToString([]byte(plain))
}

// Decrypt unwraps a {b64} value; other values pass through unchanged.
func (c Base64) Decrypt(value string) (string, error) {
	if !c.Encrypted(value) {
		return value, nil
	}
	plain, err := base64.StdEncoding.DecodeString(payload(value))
	if err != nil {
		return "", fmt.Errorf("decode base64 payload: %w", err)
	}
	return string(plain), nil
}

// Chain tries each codec in order and dispatches to the first one that
// recognizes the value. Values no codec claims pass through unchanged.
type Chain []Codec

// Encrypted reports whether any codec in the chain recognizes the value.
func (c Chain) Encrypted(value string) bool {
	for _, codec := range c {
		if codec.Encrypted(value) {
			return true
		}
	}
	return false
}

// Decrypt dispatches to the first codec that recognizes the value.
func (c Chain) Decrypt(value string) (string, error) {
	for _, codec := range c {
		if codec.Encrypted(value) {
			return codec.Decrypt(value)
		}
	}
	return value, nil
}
