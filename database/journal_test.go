package database

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	// Every pooled connection would get its own empty :memory: database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := InitDatabase(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

func entry(id, payload, outcome, scannedAt string) *model.ScanLogEntry {
	return &model.ScanLogEntry{
		ID:        id,
		Payload:   payload,
		Outcome:   outcome,
		ScannedAt: scannedAt,
	}
}

func TestInsertAndGetRecentScanLogs(t *testing.T) {
	db := newTestDB(t)

	if err := InsertScanLog(db, entry("a", "4006381333931", "found", "2026-08-29T10:00:00Z")); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if err := InsertScanLog(db, entry("b", "ABC123", "not_found", "2026-08-29T10:01:00Z")); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	entries, err := GetRecentScanLogs(db, 10)
	if err != nil {
		t.Fatalf("unexpected query error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "b" {
		t.Fatalf("expected newest entry first, got %s", entries[0].ID)
	}
}

func TestInsertDuplicateIDFails(t *testing.T) {
	db := newTestDB(t)

	if err := InsertScanLog(db, entry("a", "X", "not_found", "2026-08-29T10:00:00Z")); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if err := InsertScanLog(db, entry("a", "Y", "not_found", "2026-08-29T10:01:00Z")); err == nil {
		t.Fatalf("expected primary key violation")
	}
}

func TestGetScanLogsBetween(t *testing.T) {
	db := newTestDB(t)

	for _, e := range []*model.ScanLogEntry{
		entry("a", "1", "found", "2026-08-29T09:00:00Z"),
		entry("b", "2", "found", "2026-08-29T10:00:00Z"),
		entry("c", "3", "found", "2026-08-29T11:00:00Z"),
	} {
		if err := InsertScanLog(db, e); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	entries, err := GetScanLogsBetween(db, "2026-08-29T09:30:00Z", "2026-08-29T10:30:00Z")
	if err != nil {
		t.Fatalf("unexpected query error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "b" {
		t.Fatalf("expected only entry b in range, got %+v", entries)
	}

	all, err := GetScanLogsBetween(db, "", "")
	if err != nil {
		t.Fatalf("unexpected query error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected open-ended range to return all 3 entries, got %d", len(all))
	}
}

func TestSummarizeOutcomes(t *testing.T) {
	db := newTestDB(t)

	for _, e := range []*model.ScanLogEntry{
		entry("a", "1", "found", "2026-08-29T09:00:00Z"),
		entry("b", "2", "found", "2026-08-29T10:00:00Z"),
		entry("c", "3", "not_found", "2026-08-29T11:00:00Z"),
	} {
		if err := InsertScanLog(db, e); err != nil {
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	rows, err := SummarizeOutcomes(db, "", "")
	if err != nil {
		t.Fatalf("unexpected summary error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 outcome groups, got %d", len(rows))
	}
	if rows[0].Outcome != "found" || rows[0].Count != 2 {
		t.Fatalf("unexpected first group %+v", rows[0])
	}
	if rows[1].Outcome != "not_found" || rows[1].Count != 1 {
		t.Fatalf("unexpected second group %+v", rows[1])
	}
}
