package backend

import (
	"context"
	"fmt"

	applog "zenwallet/internal/log"
	"zenwallet/internal/store"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case FileBackend:
		return f.createFileStore(ctx, config)
	case SQLiteBackend:
		return f.createSQLiteStore(ctx, config)
	case MemoryBackend:
		f.logger.InfoContext(ctx, "Initialized memory backend")
		return &Result{Store: store.NewMemoryStore()}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createFileStore(ctx context.Context, config Config) (*Result, error) {
	s, err := store.NewFileStore(config.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}
	f.logger.InfoContext(ctx, "Initialized file backend", "state_path", config.StatePath)
	return &Result{Store: s}, nil
}

func (f *DefaultFactory) createSQLiteStore(ctx context.Context, config Config) (*Result, error) {
	s, err := store.NewSQLiteStore(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}
	f.logger.InfoContext(ctx, "Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return &Result{Store: s, Cleanup: s.Close}, nil
}
