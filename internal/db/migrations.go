package db

import (
	"database/sql"
	"fmt"
)

// The whole persisted state is a key-value blob table: one key holds the
// JSON-serialized history log. No schema versioning.
const baseSchema = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	return nil
}
