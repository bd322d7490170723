// Package observability provides the logging, metrics, and tracing surface
// of the resolver: structured warnings via slog (Go stdlib), counters via
// OpenTelemetry, and span helpers for callers that wrap resolution phases.
//
// All features are opt-in and have no-op implementations when disabled.
// The mismatch warning texts emitted here are load-bearing: callers key
// instrumentation off them, so they must not be reworded.
package observability

import (
	"fmt"
	"log/slog"
)

// EnrichLogger adds resolver session context to a logger.
// Returns a new logger carrying a session_id field.
func EnrichLogger(logger *slog.Logger, sessionID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("session_id", sessionID))
}

// LogScalarAccessToMultiValue warns that a declared multi-valued property
// was read through Get. Advisory only; resolution proceeds.
func LogScalarAccessToMultiValue(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Warn(
		fmt.Sprintf("Access to the multi-valued property '%s' should be made using 'GetStringArray' method. The plugin using this property should be updated.", key),
		slog.String("property", key),
	)
}

// LogArrayAccessToSingleValue warns that a property not declared as
// multi-valued was read through GetStringArray. Advisory only.
func LogArrayAccessToSingleValue(logger *slog.Logger, key string) {
	if logger == nil {
		return
	}
	logger.Warn(
		fmt.Sprintf("Property '%s' is not declared as multi-valued but was read using 'GetStringArray' method. The plugin declaring this property should be updated.", key),
		slog.String("property", key),
	)
}

// LogParseFailure logs a multi-value parse failure before it is returned
// to the caller.
func LogParseFailure(logger *slog.Logger, key string, err error) {
	if logger == nil {
		return
	}
	logger.Error("multi-value parse failed",
		slog.String("property", key),
		slog.String("error", err.Error()),
	)
}

// LogDecryptFailure logs a secret decryption failure before it is returned
// to the caller.
func LogDecryptFailure(logger *slog.Logger, key string, err error) {
	if logger == nil {
		return
	}
	logger.Error("secret decryption failed",
		slog.String("property", key),
		slog.String("error", err.Error()),
	)
}
