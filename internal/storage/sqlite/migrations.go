package sqlite

import "database/sql"

// schema sets up the database. It runs on startup to ensure tables exist.
// Each row holds one whole collection as a JSON blob.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
