package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// InitDatabase applies the scan journal schema. Idempotent; runs on every
// startup.
func InitDatabase(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS scan_log (
		id             TEXT PRIMARY KEY,
		payload        TEXT NOT NULL,
		canonical_code TEXT NOT NULL DEFAULT '',
		symbology      TEXT NOT NULL DEFAULT '',
		source         TEXT NOT NULL DEFAULT '',
		outcome        TEXT NOT NULL,
		article_number TEXT NOT NULL DEFAULT '',
		article_name   TEXT NOT NULL DEFAULT '',
		stock          INTEGER NOT NULL DEFAULT 0,
		min_stock      INTEGER NOT NULL DEFAULT 0,
		scanned_at     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_scan_log_scanned_at ON scan_log(scanned_at);
	CREATE INDEX IF NOT EXISTS idx_scan_log_outcome ON scan_log(outcome);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply scan_log schema: %w", err)
	}
	return nil
}
