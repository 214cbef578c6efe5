// Package station owns the scan workflow: input normalization, debouncing,
// lookup, presentation state and the active capture source.
package station

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/text/width"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/barcode"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/capture"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/database"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/debounce"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/render"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/resolver"
)

type State string

const (
	StateIdle      State = "idle"
	StateResolving State = "resolving"
)

// Redirect tells the client where to navigate after an outcome, and after
// how long.
type Redirect struct {
	URL     string `json:"url"`
	DelayMs int    `json:"delayMs"`
}

// Result is the station's view state: the latest completed lookup and how to
// present it. It is replaced as a whole on every completed lookup and never
// mutated field-wise after publication.
type Result struct {
	Event    model.ScanEvent     `json:"event"`
	Outcome  model.LookupOutcome `json:"outcome"`
	HTML     string              `json:"html"`
	Redirect *Redirect           `json:"redirect,omitempty"`
}

// Session runs the scan workflow for one station. At most one Result is held
// at a time, corresponding to the most recent completed lookup.
type Session struct {
	filter          *debounce.Filter
	resolver        *resolver.Resolver
	db              *sqlx.DB
	redirectDelayMs int

	mu      sync.Mutex
	state   State
	latest  *Result
	capture capture.Source
}

// NewSession wires the workflow. db may be nil, in which case lookups are not
// journalled.
func NewSession(res *resolver.Resolver, filter *debounce.Filter, db *sqlx.DB, redirectDelayMs int) *Session {
	return &Session{
		filter:          filter,
		resolver:        res,
		db:              db,
		redirectDelayMs: redirectDelayMs,
		state:           StateIdle,
	}
}

// NormalizePayload folds full-width characters to their narrow forms and
// trims surrounding whitespace. Wedge scanners behind a full-width IME emit
// full-width digits that the article API does not know.
func NormalizePayload(raw string) string {
	return strings.TrimSpace(width.Narrow.String(raw))
}

// Submit runs one payload through the full workflow: normalize, debounce,
// resolve, present, journal. The boolean is false when the payload was
// ignored (empty input, duplicate inside the debounce window) or when the
// outcome was superseded by a newer lookup before it completed.
func (s *Session) Submit(ctx context.Context, rawPayload, symbology, source string) (*Result, bool) {
	res, _, committed := s.submit(ctx, rawPayload, symbology, source)
	return res, committed
}

// submit additionally reports whether the debounce filter accepted the
// payload. Capture is one-shot on acceptance: the pump must stop even when
// the resulting outcome ends up superseded and is never committed.
func (s *Session) submit(ctx context.Context, rawPayload, symbology, source string) (res *Result, accepted, committed bool) {
	payload := NormalizePayload(rawPayload)
	if payload == "" {
		return nil, false, false
	}

	now := time.Now()
	if !s.filter.Accept(payload, now) {
		return nil, false, false
	}

	ev := model.ScanEvent{Payload: payload, Symbology: symbology, Timestamp: now}

	id := s.resolver.NextID()
	s.mu.Lock()
	s.state = StateResolving
	s.mu.Unlock()

	outcome := s.resolver.Resolve(ctx, payload)
	res = s.buildResult(ev, outcome)

	if !s.commit(id, res) {
		return nil, true, false
	}

	s.journal(ev, outcome, source)
	return res, true, true
}

func (s *Session) buildResult(ev model.ScanEvent, outcome model.LookupOutcome) *Result {
	res := &Result{
		Event:   ev,
		Outcome: outcome,
		HTML:    render.RenderOutcomeHTML(ev, outcome, s.resolver.LoginURL(), s.redirectDelayMs),
	}
	if outcome.Kind == model.OutcomeAuthRequired {
		res.Redirect = &Redirect{URL: s.resolver.LoginURL(), DelayMs: s.redirectDelayMs}
	}
	return res
}

// commit publishes the outcome unless a newer lookup was issued while this
// one was in flight. A stale outcome must never overwrite a newer one; the
// in-flight request is not cancelled, its result is simply discarded here.
func (s *Session) commit(id uint64, res *Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.resolver.LatestID() {
		return false
	}
	s.latest = res
	s.state = StateIdle
	return true
}

func (s *Session) journal(ev model.ScanEvent, outcome model.LookupOutcome, source string) {
	if s.db == nil {
		return
	}

	entry := &model.ScanLogEntry{
		ID:            uuid.NewString(),
		Payload:       ev.Payload,
		CanonicalCode: barcode.CanonicalCode(ev.Payload),
		Symbology:     ev.Symbology,
		Source:        source,
		Outcome:       string(outcome.Kind),
		ScannedAt:     ev.Timestamp.UTC().Format(time.RFC3339),
	}
	if outcome.Article != nil {
		entry.ArticleNumber = outcome.Article.ArticleNumber
		entry.ArticleName = outcome.Article.Name
		entry.Stock = outcome.Article.Stock
		entry.MinStock = outcome.Article.MinStock
	}

	if err := database.InsertScanLog(s.db, entry); err != nil {
		log.Printf("WARN: journalling scan %s failed: %v", ev.Payload, err)
	}
}

// Latest returns the current view state; nil before the first completed
// lookup.
func (s *Session) Latest() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StartCapture attaches a source and pumps its events through Submit.
// Capture is one-shot: the pump stops the source the instant a payload is
// accepted by the debounce filter. Only one source may run at a time.
func (s *Session) StartCapture(src capture.Source, label string) error {
	s.mu.Lock()
	if s.capture != nil {
		s.mu.Unlock()
		return fmt.Errorf("capture already running")
	}
	s.capture = src
	s.mu.Unlock()

	go s.pump(src, label)
	return nil
}

func (s *Session) pump(src capture.Source, label string) {
	for ev := range src.Events() {
		// One-shot on debounce acceptance, not on commit: an accepted scan
		// whose outcome gets superseded still ends this capture.
		if _, accepted, _ := s.submit(context.Background(), ev.Payload, ev.Symbology, label); accepted {
			break
		}
	}
	if err := s.stopSource(src); err != nil {
		log.Printf("WARN: releasing capture source: %v", err)
	}
}

// StopCapture releases the active source. Safe to call when nothing is
// running.
func (s *Session) StopCapture() error {
	s.mu.Lock()
	src := s.capture
	s.mu.Unlock()

	if src == nil {
		return nil
	}
	return s.stopSource(src)
}

// stopSource closes src and clears it from the session if it is still the
// active source. Both the pump and StopCapture funnel through here, so a
// source is closed exactly once per attach (Source.Close is idempotent
// besides).
func (s *Session) stopSource(src capture.Source) error {
	s.mu.Lock()
	if s.capture == src {
		s.capture = nil
	}
	s.mu.Unlock()

	return src.Close()
}

// CaptureActive reports whether a capture source is attached.
func (s *Session) CaptureActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capture != nil
}
