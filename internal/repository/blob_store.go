package repository

import (
	"context"
	"database/sql"
	"time"
)

// BlobStore is a key-value text blob store. The history log lives under a
// single key as one JSON-serialized list, so every mutation is a full
// read-modify-write of that blob. Get returns "" with ok=false when the
// key is absent.
type BlobStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type sqliteBlobStore struct {
	db *sql.DB
}

// NewBlobStore creates a BlobStore backed by the sqlite kv table.
func NewBlobStore(db *sql.DB) BlobStore {
	return &sqliteBlobStore{db: db}
}

func (r *sqliteBlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *sqliteBlobStore) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, now)
	return err
}

func (r *sqliteBlobStore) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}
