package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/report"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/station"
)

func SetupRoutes(r *mux.Router, dbConn *sqlx.DB, sess *station.Session) {
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	r.HandleFunc("/api/scan/submit", station.SubmitScanHandler(sess)).Methods("POST")
	r.HandleFunc("/api/scan/state", station.StateHandler(sess)).Methods("GET")

	r.HandleFunc("/api/capture/start", station.StartCaptureHandler(sess)).Methods("POST")
	r.HandleFunc("/api/capture/stop", station.StopCaptureHandler(sess)).Methods("POST")

	r.HandleFunc("/api/report/scans", report.ListScanLogsHandler(dbConn)).Methods("GET")
	r.HandleFunc("/api/report/scans/summary", report.SummaryHandler(dbConn)).Methods("GET")
	r.HandleFunc("/api/report/scans/export_csv", report.ExportScanCSVHandler(dbConn)).Methods("GET")

	r.HandleFunc("/api/config", GetConfigHandler()).Methods("GET")
	r.HandleFunc("/api/config", SaveConfigHandler()).Methods("POST")

	r.HandleFunc("/", indexHandler).Methods("GET")
}

// indexHandler serves a bare operator page; layout and styling live with the
// warehouse frontend, not here.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Scan Station</title></head>
<body>
<h1>Scan Station</h1>
<p>POST /api/scan/submit &middot; POST /api/capture/start &middot; GET /api/report/scans</p>
</body>
</html>`)
}
