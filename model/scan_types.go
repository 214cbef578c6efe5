package model

import "time"

// ScanEvent is one decoded read from any capture source. Events are immutable;
// a new read produces a new event that supersedes the previous one.
type ScanEvent struct {
	Payload   string    `json:"payload"`
	Symbology string    `json:"symbology"`
	Timestamp time.Time `json:"timestamp"`
}

// Article mirrors the article JSON served by the warehouse API.
type Article struct {
	Name          string `json:"name"`
	ArticleNumber string `json:"articleNumber"`
	Stock         int    `json:"stock"`
	MinStock      int    `json:"minStock"`
	Barcode       string `json:"barcode,omitempty"`
}

// LowStock reports whether the current stock is at or below the configured
// minimum stock threshold.
func (a Article) LowStock() bool {
	return a.Stock <= a.MinStock
}

type OutcomeKind string

const (
	OutcomeFound        OutcomeKind = "found"
	OutcomeNotFound     OutcomeKind = "not_found"
	OutcomeAuthRequired OutcomeKind = "auth_required"
)

// LookupOutcome is the result of exactly one resolution attempt. Article is
// set only when Kind is OutcomeFound; the struct is never partially populated.
type LookupOutcome struct {
	Kind    OutcomeKind `json:"kind"`
	Article *Article    `json:"article,omitempty"`
}
