// Package snapshot persists assembled property maps between runs.
//
// Store assembly itself stays with the caller (merging defaults, files and
// server-delivered settings is out of the resolver's scope); this package
// only lets scanner-style callers cache the merged result, typically the
// settings fetched from a server, so a later run can resolve offline. Load
// a snapshot, hand the map to propkit.New, done.
package snapshot

import (
	"errors"
	"time"
)

// Store persists property-map snapshots keyed by a caller-chosen identifier
// (project key, analysis id, ...). Implementations must be safe for
// concurrent use.
type Store interface {
	// Save stores a snapshot under id.
	// Overwrites any existing snapshot with the same id.
	Save(id string, props map[string]string) error

	// Load retrieves a snapshot.
	// Returns ErrNotFound if no snapshot exists under id.
	Load(id string) (map[string]string, error)

	// List returns metadata for all snapshots, ordered by id.
	// Returns empty slice (not error) when the store is empty.
	List() ([]Info, error)

	// Delete removes a snapshot.
	// Returns nil if no snapshot exists under id.
	Delete(id string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides snapshot metadata without loading the full map.
type Info struct {
	ID        string
	Timestamp time.Time
	Keys      int
}

// Sentinel errors for snapshot operations.
var (
	// ErrNotFound indicates a snapshot doesn't exist.
	ErrNotFound = errors.New("snapshot not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("snapshot store closed")
)
