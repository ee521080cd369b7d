package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"zenwallet/internal/core"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore holds the same single state blob as the file store, in
// one row of an app_state table. Blob-level read-modify-write semantics
// are identical; SQLite only serializes the underlying writes.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateSchema(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// migrateSchema brings the app_state table up to date. It runs on its
// own connection so the store's main connection never sees a
// half-migrated schema.
func migrateSchema(dbPath string) error {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer conn.Close()

	target, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("wrap migration target: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", target)
	if err != nil {
		return fmt.Errorf("build migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *SQLiteStore) LoadState(ctx context.Context) (core.FinancialState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx), nil
}

func (s *SQLiteStore) loadLocked(ctx context.Context) core.FinancialState {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE id = 1`).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.WarnContext(ctx, "State row unreadable, using empty state", "error", err)
		}
		return core.EmptyState()
	}
	state, err := decodeState(payload)
	if err != nil {
		slog.WarnContext(ctx, "State row corrupt, using empty state", "error", err)
		return core.EmptyState()
	}
	return state
}

func (s *SQLiteStore) AddTransaction(ctx context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx)
	state.Transactions = append(state.Transactions, t)
	if err := s.writeLocked(ctx, state); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", t.ID,
		"type", string(t.Type),
		"category", string(t.Category),
		"amount_cents", t.Amount.Cents)
	return nil
}

func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx)
	remaining, found := deleteByID(state.Transactions, id)
	if !found {
		slog.DebugContext(ctx, "Delete of unknown transaction ignored", "id", id)
		return nil
	}
	state.Transactions = remaining
	if err := s.writeLocked(ctx, state); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction deleted from SQLite", "id", id)
	return nil
}

func (s *SQLiteStore) SeedBudgets(ctx context.Context, budgets []core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.loadLocked(ctx)
	if len(state.Budgets) > 0 {
		return nil
	}
	state.Budgets = budgets
	return s.writeLocked(ctx, state)
}

func (s *SQLiteStore) writeLocked(ctx context.Context, state core.FinancialState) error {
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (id, payload, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload))
	if err != nil {
		return fmt.Errorf("write state row: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
