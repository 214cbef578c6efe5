package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

func InsertScanLog(db *sqlx.DB, entry *model.ScanLogEntry) error {
	_, err := db.NamedExec(`
		INSERT INTO scan_log (
			id, payload, canonical_code, symbology, source, outcome,
			article_number, article_name, stock, min_stock, scanned_at
		) VALUES (
			:id, :payload, :canonical_code, :symbology, :source, :outcome,
			:article_number, :article_name, :stock, :min_stock, :scanned_at
		)`, entry)
	if err != nil {
		return fmt.Errorf("failed to insert scan_log entry %s: %w", entry.ID, err)
	}
	return nil
}

func GetRecentScanLogs(db *sqlx.DB, limit int) ([]model.ScanLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	var entries []model.ScanLogEntry
	err := db.Select(&entries, `
		SELECT id, payload, canonical_code, symbology, source, outcome,
		       article_number, article_name, stock, min_stock, scanned_at
		FROM scan_log
		ORDER BY scanned_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent scan_log entries: %w", err)
	}
	return entries, nil
}

// GetScanLogsBetween returns entries with from <= scanned_at < to. Empty
// bounds are open-ended.
func GetScanLogsBetween(db *sqlx.DB, from, to string) ([]model.ScanLogEntry, error) {
	query := `
		SELECT id, payload, canonical_code, symbology, source, outcome,
		       article_number, article_name, stock, min_stock, scanned_at
		FROM scan_log WHERE 1=1`
	args := []interface{}{}

	if from != "" {
		query += ` AND scanned_at >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND scanned_at < ?`
		args = append(args, to)
	}
	query += ` ORDER BY scanned_at, id`

	var entries []model.ScanLogEntry
	if err := db.Select(&entries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query scan_log range [%s, %s): %w", from, to, err)
	}
	return entries, nil
}

func SummarizeOutcomes(db *sqlx.DB, from, to string) ([]model.ScanSummaryRow, error) {
	query := `SELECT outcome, COUNT(*) AS cnt FROM scan_log WHERE 1=1`
	args := []interface{}{}

	if from != "" {
		query += ` AND scanned_at >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND scanned_at < ?`
		args = append(args, to)
	}
	query += ` GROUP BY outcome ORDER BY outcome`

	var rows []model.ScanSummaryRow
	if err := db.Select(&rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to summarize scan_log outcomes: %w", err)
	}
	return rows, nil
}
