package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The kv table mirrors the
// localStorage layout of the original browser tool: whole collections
// serialized as JSON under well-known keys. Photos are kept out of the
// kv blobs so a photo upload never rewrites the item collection.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS photos (
    item_id     TEXT PRIMARY KEY,
    data        BLOB NOT NULL,
    mime        TEXT NOT NULL,
    uploaded_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
