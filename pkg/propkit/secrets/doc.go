// Package secrets provides the Codec capability the resolver uses to
// transparently decrypt configuration values, plus ready-made codecs:
// Nop (nothing encrypted), Base64 ({b64} obfuscation), AEAD ({xchacha20}
// XChaCha20-Poly1305) and Chain (prefix dispatch across codecs).
//
// The resolver only consumes the Codec interface; callers choose and
// construct the implementation, including key management.
package secrets
