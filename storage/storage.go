// Package storage provides persistent backends for the portal Store: a bbolt
// database file, and a folder holding one json file per key.
//
// Both satisfy portal.Storage: Load of a missing key returns an error
// matching fs.ErrNotExist.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend names, as accepted by Open.
const (
	BackendBolt = "bolt"
	BackendDir  = "dir"
)

// Backend is a persistent storage that must be closed.
type Backend interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
	Close() error
}

// Open opens the backend named kind at path.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case BackendBolt, "":
		return OpenBolt(path)
	case BackendDir:
		return OpenDir(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q, want %q or %q", kind, BackendBolt, BackendDir)
	}
}

// DefaultPath returns the default location of the store of the given kind,
// in the user config directory.
func DefaultPath(kind string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	if kind == BackendDir {
		return filepath.Join(dir, "studentportal")
	}
	return filepath.Join(dir, "studentportal", "portal.db")
}
