package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	storeout "mindmate/internal/modules/store/port/out"
	apperrors "mindmate/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps the document as a single row of a documents table, one
// row per slot.
type SQLiteBackend struct {
	db   *sql.DB
	slot string
}

func NewSQLiteBackend(dbPath, slot string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	backend := &SQLiteBackend{db: db, slot: slot}
	if err := backend.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return backend, nil
}

var _ storeout.Backend = (*SQLiteBackend)(nil)

func (b *SQLiteBackend) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS documents (
  slot TEXT PRIMARY KEY,
  body TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := b.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Name() string { return "sqlite" }

func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var body string
	err := b.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE slot = ?`, b.slot).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("select document: %w", err)
	}
	return []byte(body), nil
}

func (b *SQLiteBackend) Store(ctx context.Context, payload []byte) error {
	const stmt = `
INSERT INTO documents (slot, body, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET
  body=excluded.body,
  updated_at=excluded.updated_at;
`
	if _, err := b.db.ExecContext(ctx, stmt, b.slot, string(payload), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
