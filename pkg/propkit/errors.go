package propkit

import "fmt"

// MalformedValueError reports a multi-valued property whose raw string does
// not satisfy the CSV-subset grammar (an unclosed quoted field, or stray
// input after a closing quote).
//
// The message format is relied on by existing callers and must not change.
type MalformedValueError struct {
	Key string
	Raw string
}

// Error implements the error interface.
func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("Property: '%s' doesn't contain a valid CSV value: '%s'", e.Key, e.Raw)
}

// DecryptError reports a value the codec identified as encrypted but could
// not decrypt. The codec's own error is wrapped and available via Unwrap.
type DecryptError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *DecryptError) Error() string {
	return fmt.Sprintf("property '%s': unable to decrypt value: %v", e.Key, e.Err)
}

// Unwrap returns the codec error.
func (e *DecryptError) Unwrap() error {
	return e.Err
}
