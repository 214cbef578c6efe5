// Package render builds the HTML result panels shown after a lookup.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

// RenderOutcomeHTML generates the result panel for the latest lookup. The
// panel is a pure function of the latest outcome and scan event; nothing
// older than the current pair is rendered.
func RenderOutcomeHTML(ev model.ScanEvent, outcome model.LookupOutcome, loginURL string, redirectDelayMs int) string {
	var sb strings.Builder

	sb.WriteString(`<div class="scan-result">`)
	sb.WriteString(fmt.Sprintf(`<div class="scan-echo">Scanned: <code>%s</code>`, html.EscapeString(ev.Payload)))
	if ev.Symbology != "" {
		sb.WriteString(fmt.Sprintf(` <span class="scan-symbology">(%s)</span>`, html.EscapeString(ev.Symbology)))
	}
	sb.WriteString(`</div>`)

	switch outcome.Kind {
	case model.OutcomeFound:
		writeArticleDetail(&sb, outcome.Article)
	case model.OutcomeNotFound:
		sb.WriteString(fmt.Sprintf(`<div class="scan-miss">No article found for "%s".</div>`,
			html.EscapeString(ev.Payload)))
	case model.OutcomeAuthRequired:
		sb.WriteString(fmt.Sprintf(
			`<div class="scan-auth" data-redirect-url="%s" data-redirect-delay-ms="%d">Session expired. Please sign in again.</div>`,
			html.EscapeString(loginURL), redirectDelayMs))
	}

	sb.WriteString(`</div>`)
	return sb.String()
}

func writeArticleDetail(sb *strings.Builder, art *model.Article) {
	badgeVariant := "default"
	if art.LowStock() {
		badgeVariant = "destructive"
	}

	sb.WriteString(`<table class="article-detail"><tbody>`)
	sb.WriteString(fmt.Sprintf(`<tr><th>Name</th><td>%s</td></tr>`, html.EscapeString(art.Name)))
	sb.WriteString(fmt.Sprintf(`<tr><th>Article no.</th><td>%s</td></tr>`, html.EscapeString(art.ArticleNumber)))
	sb.WriteString(fmt.Sprintf(`<tr><th>Stock</th><td><span class="badge badge-%s">%d / min %d</span></td></tr>`,
		badgeVariant, art.Stock, art.MinStock))
	if art.Barcode != "" {
		sb.WriteString(fmt.Sprintf(`<tr><th>Barcode</th><td>%s</td></tr>`, html.EscapeString(art.Barcode)))
	}
	sb.WriteString(`</tbody></table>`)
}
