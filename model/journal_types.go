package model

// ScanLogEntry is one journalled lookup. Timestamps are stored as RFC 3339
// strings so the sqlite rows stay readable and sortable without driver-side
// time handling.
type ScanLogEntry struct {
	ID            string `db:"id" json:"id"`
	Payload       string `db:"payload" json:"payload"`
	CanonicalCode string `db:"canonical_code" json:"canonicalCode"`
	Symbology     string `db:"symbology" json:"symbology"`
	Source        string `db:"source" json:"source"`
	Outcome       string `db:"outcome" json:"outcome"`
	ArticleNumber string `db:"article_number" json:"articleNumber"`
	ArticleName   string `db:"article_name" json:"articleName"`
	Stock         int    `db:"stock" json:"stock"`
	MinStock      int    `db:"min_stock" json:"minStock"`
	ScannedAt     string `db:"scanned_at" json:"scannedAt"`
}

type ScanSummaryRow struct {
	Outcome string `db:"outcome" json:"outcome"`
	Count   int    `db:"cnt" json:"count"`
}
