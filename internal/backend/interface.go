package backend

import (
	"context"

	"zenwallet/internal/store"
)

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory creates record stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation.
type Config struct {
	Type Type

	// File backend
	StatePath string

	// SQLite backend
	SQLiteDBPath string
}

// Type selects the record store backend.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
