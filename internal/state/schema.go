package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS activity (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action_name TEXT NOT NULL,
			source TEXT NOT NULL,
			label TEXT,
			dispatched_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_activity_dispatched_at ON activity(dispatched_at DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	var version int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version); err != nil {
		return err
	}
	if version == 1 {
		// version 1 logs had no label column; fails harmlessly if it exists
		_, _ = db.Exec(`ALTER TABLE activity ADD COLUMN label TEXT`)
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
