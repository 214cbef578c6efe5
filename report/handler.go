package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/database"
)

// ListScanLogsHandler returns the most recent journal entries.
// GET /api/report/scans?limit=N
func ListScanLogsHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		entries, err := database.GetRecentScanLogs(conn, limit)
		if err != nil {
			log.Printf("Error listing scan logs: %v", err)
			http.Error(w, "Failed to list scan logs", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// SummaryHandler aggregates journal entries per outcome.
// GET /api/report/scans/summary?from=...&to=...
func SummaryHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		rows, err := database.SummarizeOutcomes(conn, q.Get("from"), q.Get("to"))
		if err != nil {
			log.Printf("Error summarizing scan logs: %v", err)
			http.Error(w, "Failed to summarize scan logs", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}
}

// ExportScanCSVHandler streams the journal as a spreadsheet-compatible CSV
// attachment. GET /api/report/scans/export_csv?from=...&to=...
func ExportScanCSVHandler(conn *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		entries, err := database.GetScanLogsBetween(conn, q.Get("from"), q.Get("to"))
		if err != nil {
			log.Printf("Error exporting scan logs: %v", err)
			http.Error(w, "Failed to export scan logs: "+err.Error(), http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM so Excel picks the right charset

		header := []string{"ScannedAt", "Payload", "CanonicalCode", "Symbology", "Source", "Outcome", "ArticleNumber", "ArticleName", "Stock", "MinStock"}
		buf.WriteString(strings.Join(header, ",") + "\r\n")

		for _, e := range entries {
			record := []string{
				quoteAll(e.ScannedAt),
				quoteAll(e.Payload),
				quoteAll(e.CanonicalCode),
				quoteAll(e.Symbology),
				quoteAll(e.Source),
				quoteAll(e.Outcome),
				quoteAll(e.ArticleNumber),
				quoteAll(e.ArticleName),
				quoteAll(strconv.Itoa(e.Stock)),
				quoteAll(strconv.Itoa(e.MinStock)),
			}
			buf.WriteString(strings.Join(record, ",") + "\r\n")
		}

		filename := fmt.Sprintf("scan_journal_%s.csv", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		w.Write(buf.Bytes())
	}
}

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
