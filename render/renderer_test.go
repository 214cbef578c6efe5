package render

import (
	"strings"
	"testing"
	"time"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

func event(payload string) model.ScanEvent {
	return model.ScanEvent{Payload: payload, Symbology: "ean-13", Timestamp: time.Now()}
}

func TestRenderFoundArticle(t *testing.T) {
	outcome := model.LookupOutcome{
		Kind: model.OutcomeFound,
		Article: &model.Article{
			Name:          "Stabilo Boss",
			ArticleNumber: "A-100",
			Stock:         12,
			MinStock:      5,
		},
	}

	html := RenderOutcomeHTML(event("4006381333931"), outcome, "http://api/api/login", 2000)

	for _, want := range []string{"4006381333931", "Stabilo Boss", "A-100", "badge-default"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected rendered panel to contain %q; got %s", want, html)
		}
	}
	if strings.Contains(html, "badge-destructive") {
		t.Fatalf("stock above minimum must not render the destructive badge")
	}
}

func TestRenderLowStockBadge(t *testing.T) {
	outcome := model.LookupOutcome{
		Kind: model.OutcomeFound,
		Article: &model.Article{
			Name:          "Packing tape",
			ArticleNumber: "A-200",
			Stock:         5,
			MinStock:      5,
		},
	}

	html := RenderOutcomeHTML(event("A-200"), outcome, "http://api/api/login", 2000)

	// Stock equal to minimum counts as low stock.
	if !strings.Contains(html, "badge-destructive") {
		t.Fatalf("expected destructive badge at stock == minStock; got %s", html)
	}
}

func TestRenderNotFoundEchoesCode(t *testing.T) {
	html := RenderOutcomeHTML(event("ABC123"), model.LookupOutcome{Kind: model.OutcomeNotFound}, "http://api/api/login", 2000)

	if !strings.Contains(html, `No article found for "ABC123"`) {
		t.Fatalf("expected not-found message containing the code; got %s", html)
	}
}

func TestRenderAuthRequired(t *testing.T) {
	html := RenderOutcomeHTML(event("XYZ"), model.LookupOutcome{Kind: model.OutcomeAuthRequired}, "http://warehouse/api/login", 2000)

	if !strings.Contains(html, "Session expired") {
		t.Fatalf("expected authentication message; got %s", html)
	}
	if !strings.Contains(html, `data-redirect-url="http://warehouse/api/login"`) {
		t.Fatalf("expected redirect target in panel; got %s", html)
	}
	if !strings.Contains(html, `data-redirect-delay-ms="2000"`) {
		t.Fatalf("expected redirect delay in panel; got %s", html)
	}
}

func TestRenderEscapesPayload(t *testing.T) {
	html := RenderOutcomeHTML(event(`<script>alert(1)</script>`), model.LookupOutcome{Kind: model.OutcomeNotFound}, "", 0)

	if strings.Contains(html, "<script>") {
		t.Fatalf("payload must be escaped; got %s", html)
	}
}
