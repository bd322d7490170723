// Package propkit resolves configuration values from a flat string-keyed
// property store against a declaration catalog.
//
// # Overview
//
// A Configuration is built once from three inputs the caller assembles:
//
//   - a schema.Definitions catalog declaring, per key, whether the property is
//     multi-valued and whether it has a default value
//   - the raw key→value store, already merged from whatever sources apply
//   - a secrets.Codec able to detect and decrypt encrypted values
//
// Each query then resolves a single key: the store value wins, a declared
// default fills in, otherwise the key is absent. Multi-valued properties are
// split with CSV-subset rules (comma-delimited, double-quote escaping, unquoted
// fields trimmed), and encrypted values are decrypted before use.
//
// When a caller's access method disagrees with the declaration (a multi-valued
// property read through Get, or a single-valued one read through
// GetStringArray), the resolver emits a WARN-level advisory and keeps going.
// Old integrations keep working, just noisily.
//
// # Basic Usage
//
//	defs, err := schema.New([]schema.Definition{
//	    {Key: "scanner.exclusions", MultiValues: true},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := propkit.New(defs, map[string]string{
//	    "scanner.exclusions": `"**/vendor/**",**/testdata/**`,
//	})
//
//	patterns, err := cfg.GetStringArray("scanner.exclusions")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Secrets
//
// Give the resolver a codec and encrypted values decrypt transparently:
//
//	codec, _ := secrets.NewAEAD(key)
//	cfg := propkit.New(defs, props, propkit.WithCodec(codec))
//
//	token, ok, err := cfg.Get("server.token") // plaintext, never ciphertext
//
// # Thread Safety
//
// Configuration is immutable after New and side-effect-free except for logging
// and metrics; concurrent queries need no locking. No query performs I/O or
// blocks.
package propkit
