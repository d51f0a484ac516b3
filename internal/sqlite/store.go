// Package sqlite implements the durable product catalog and sale ledger
// on a single SQLite database file. It is the only component that touches
// storage; stock arithmetic happens inside conditional SQL statements so
// the stock >= 0 invariant holds under concurrent callers.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/counterware/tally/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "tally.db"

// Compile-time interface checks: Store must implement Catalog and Ledger.
var (
	_ types.Catalog = (*Store)(nil)
	_ types.Ledger  = (*Store)(nil)
)

// Store is the SQLite-backed implementation of types.Catalog and
// types.Ledger. All methods are safe for concurrent use; writes serialize
// on a single connection.
type Store struct {
	mu  sync.RWMutex
	db  *sql.DB
	cfg types.Config
	log zerolog.Logger
}

// dsnPragmas is appended to the database path so the driver applies the
// pragmas on every new connection, not just the first. WAL keeps readers
// from blocking the writer; the busy timeout covers a second terminal
// process holding the write lock on the same file.
const dsnPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// Open validates the config, creates the data directory if needed, opens
// the database file, and applies the schema. The schema is idempotent;
// an existing database file is reused as-is, never recreated.
func Open(cfg types.Config, logger zerolog.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection serializes all writes inside this process; SQLite
	// allows only one writer per file anyway.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying indexes: %w", err)
		}
	}

	s := &Store{
		db:  db,
		cfg: cfg,
		log: logger.With().Str("component", "store").Logger(),
	}
	s.log.Debug().Str("path", dbPath).Msg("store opened")
	return s, nil
}

// Close releases the database connection. Idempotent: closing a closed
// store succeeds. Operations after Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	s.log.Debug().Msg("store closed")
	return nil
}

// conn returns the live database handle, or ErrStoreClosed after Close.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
