package main

import (
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/config"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/database"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/debounce"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/resolver"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/station"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("WARN: Failed to load config file: %v. Using defaults.", err)
	}

	log.Println("Connecting to scan journal database...")
	dbConn, err := sqlx.Open("sqlite3", cfg.JournalPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()
	log.Println("Database connection successful.")

	if err := database.InitDatabase(dbConn); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database initialization complete.")

	// The workflow components take a config snapshot here; settings saved via
	// /api/config apply on the next start.
	httpClient := &http.Client{Timeout: time.Duration(cfg.RequestTimeoutMs) * time.Millisecond}
	res := resolver.New(cfg.ArticleAPIBaseURL, httpClient)
	filter := debounce.New(time.Duration(cfg.DebounceWindowMs) * time.Millisecond)
	sess := station.NewSession(res, filter, dbConn, cfg.AuthRedirectDelayMs)
	defer sess.StopCapture()

	router := mux.NewRouter()
	SetupRoutes(router, dbConn, sess)

	log.Printf("Starting scan station on http://localhost%s (article API: %s)", cfg.ListenAddr, cfg.ArticleAPIBaseURL)

	openBrowser("http://localhost" + cfg.ListenAddr)

	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}
