package propkit

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/propkit/propkit/pkg/propkit/observability"
	"github.com/propkit/propkit/pkg/propkit/schema"
	"github.com/propkit/propkit/pkg/propkit/secrets"
)

// Configuration resolves property values from an assembled key→value store,
// reconciling each access against the declaration catalog.
//
// Resolution order for every key: raw store value, else declared default,
// else absent. Values the codec identifies as encrypted are decrypted before
// being returned (and, for array access, before being split). Accessing a
// declared multi-valued property through Get, or a single-valued one through
// GetStringArray, emits an advisory WARN and never fails the call.
//
// Configuration is immutable after New: the property map is copied at
// construction and no call mutates resolver state, so concurrent use is safe
// without locking.
type Configuration struct {
	defs      *schema.Definitions
	props     map[string]string
	codec     secrets.Codec
	mode      Mode
	logger    *slog.Logger
	metrics   observability.MetricsRecorder
	sessionID string
}

// New builds a resolver over the given declaration catalog and property
// store. Both may be nil (treated as empty). The store is copied; later
// mutation of the caller's map does not affect the resolver.
func New(defs *schema.Definitions, props map[string]string, opts ...Option) *Configuration {
	c := &Configuration{
		defs:      defs,
		props:     maps.Clone(props),
		codec:     secrets.Nop{},
		mode:      ModePublish,
		logger:    slog.Default(),
		metrics:   observability.NoopMetrics{},
		sessionID: uuid.NewString(),
	}
	if c.defs == nil {
		c.defs = schema.Empty()
	}
	if c.props == nil {
		c.props = map[string]string{}
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = observability.EnrichLogger(c.logger, c.sessionID)
	return c
}

// Get resolves key as a scalar. ok reports whether a value was found in the
// store or declared as a default; err is non-nil only when decryption fails.
//
// If key is declared multi-valued and the value came from the store, an
// advisory warning is emitted and the raw, unsplit string is still returned.
func (c *Configuration) Get(key string) (value string, ok bool, err error) {
	raw, source := c.lookup(key)
	c.metrics.RecordLookup(context.Background(), key, source)
	if source == observability.SourceAbsent {
		return "", false, nil
	}

	if def, declared := c.defs.Lookup(key); declared && def.MultiValues && source == observability.SourceStore {
		observability.LogScalarAccessToMultiValue(c.logger, key)
		c.metrics.RecordMismatch(context.Background(), key, observability.MismatchScalarAccess)
	}

	decoded, err := c.decode(key, raw)
	if err != nil {
		return "", false, err
	}
	return decoded, true, nil
}

// GetStringArray resolves key as an ordered list of fields. Absent keys
// yield an empty slice. The value is decrypted first (secrets are scalar
// before being split), then parsed; parse and decrypt failures are returned
// to the caller.
//
// If key is declared but not multi-valued, an advisory warning is emitted
// and resolution proceeds.
func (c *Configuration) GetStringArray(key string) ([]string, error) {
	if def, declared := c.defs.Lookup(key); declared && !def.MultiValues {
		observability.LogArrayAccessToSingleValue(c.logger, key)
		c.metrics.RecordMismatch(context.Background(), key, observability.MismatchArrayAccess)
	}

	raw, source := c.lookup(key)
	c.metrics.RecordLookup(context.Background(), key, source)
	if source == observability.SourceAbsent {
		return []string{}, nil
	}

	decoded, err := c.decode(key, raw)
	if err != nil {
		return nil, err
	}

	fields, err := parseMultiValues(key, decoded)
	if err != nil {
		observability.LogParseFailure(c.logger, key, err)
		c.metrics.RecordParseFailure(context.Background(), key)
		return nil, err
	}
	return fields, nil
}

// HasKey reports whether key resolves to a value (store or default).
// It never emits mismatch warnings.
func (c *Configuration) HasKey(key string) bool {
	_, source := c.lookup(key)
	return source != observability.SourceAbsent
}

// GetBool resolves key as a boolean ("true", "false", "1", "0", ...).
// ok is false when the key is absent or the value does not parse.
func (c *Configuration) GetBool(key string) (value, ok bool, err error) {
	raw, ok, err := c.Get(key)
	if err != nil || !ok {
		return false, false, err
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("property %q: parse bool: %w", key, err)
	}
	return b, true, nil
}

// GetInt resolves key as an int.
func (c *Configuration) GetInt(key string) (value int, ok bool, err error) {
	raw, ok, err := c.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("property %q: parse int: %w", key, err)
	}
	return n, true, nil
}

// GetInt64 resolves key as an int64.
func (c *Configuration) GetInt64(key string) (value int64, ok bool, err error) {
	raw, ok, err := c.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("property %q: parse int64: %w", key, err)
	}
	return n, true, nil
}

// GetFloat64 resolves key as a float64.
func (c *Configuration) GetFloat64(key string) (value float64, ok bool, err error) {
	raw, ok, err := c.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("property %q: parse float: %w", key, err)
	}
	return f, true, nil
}

// GetDuration resolves key as a time.Duration ("30s", "1h30m", ...).
func (c *Configuration) GetDuration(key string) (value time.Duration, ok bool, err error) {
	raw, ok, err := c.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, false, fmt.Errorf("property %q: parse duration: %w", key, err)
	}
	return d, true, nil
}

// Mode returns the analysis mode the resolver was built for.
func (c *Configuration) Mode() Mode {
	return c.mode
}

// SessionID returns the identifier attached to this resolver's log records.
func (c *Configuration) SessionID() string {
	return c.sessionID
}

// lookup resolves the raw value for key: store first, declared default
// second. The returned source tells the caller (and the metrics) where the
// value came from.
func (c *Configuration) lookup(key string) (string, string) {
	if v, ok := c.props[key]; ok {
		return v, observability.SourceStore
	}
	if v, ok := c.defs.DefaultValue(key); ok {
		return v, observability.SourceDefault
	}
	return "", observability.SourceAbsent
}

// decode runs the codec over a resolved value. Plaintext passes through;
// a failed decryption is wrapped in *DecryptError.
func (c *Configuration) decode(key, value string) (string, error) {
	if !c.codec.Encrypted(value) {
		return value, nil
	}
	decoded, err := c.codec.Decrypt(value)
	c.metrics.RecordDecrypt(context.Background(), key, err)
	if err != nil {
		observability.LogDecryptFailure(c.logger, key, err)
		return "", &DecryptError{Key: key, Err: err}
	}
	return decoded, nil
}
