package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// WAL mode: the web server and the CLI may share the database.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (string, bool, error) {
	s.logger.Debug("sql", "op", "select", "table", "credentials", "name", name)

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE name = ?`, name,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, name, value string) error {
	s.logger.Debug("sql", "op", "upsert", "table", "credentials", "name", name)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) SetPair(ctx context.Context, name1, value1, name2, value2 string) error {
	s.logger.Debug("sql", "op", "upsert-pair", "table", "credentials", "names", []string{name1, name2})

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	const upsert = `INSERT INTO credentials (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := tx.ExecContext(ctx, upsert, name1, value1, now); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, upsert, name2, value2, now); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	s.logger.Debug("sql", "op", "delete", "table", "credentials", "name", name)

	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE name = ?`, name)
	return err
}

func (s *SQLiteStore) DeletePair(ctx context.Context, name1, name2 string) error {
	s.logger.Debug("sql", "op", "delete-pair", "table", "credentials", "names", []string{name1, name2})

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE name IN (?, ?)`, name1, name2)
	return err
}
