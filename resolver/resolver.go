// Package resolver maps a scanned code to an article by querying the
// warehouse article API over an ordered list of identifier spaces.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

// A strategy is one identifier space to try. Path carries a single %s verb
// for the escaped code.
type strategy struct {
	name string
	path string
}

type Resolver struct {
	client  *http.Client
	baseURL string
	// Tried in order; the first hit wins.
	strategies []strategy
	seq        atomic.Uint64
}

// New builds a resolver against the warehouse API at baseURL. A nil client
// gets a default with a 5 second timeout.
func New(baseURL string, client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Resolver{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		strategies: []strategy{
			{name: "barcode", path: "/api/articles/by-barcode/%s"},
			{name: "article-number", path: "/api/articles/by-number/%s"},
		},
	}
}

// NextID returns a monotonically increasing lookup id. The newest id wins:
// a caller must discard any outcome whose id is older than the latest issued
// by the time it resolves.
func (r *Resolver) NextID() uint64 {
	return r.seq.Add(1)
}

func (r *Resolver) LatestID() uint64 {
	return r.seq.Load()
}

// LoginURL is the re-authentication entry point clients are sent to after
// an authentication-required outcome.
func (r *Resolver) LoginURL() string {
	return r.baseURL + "/api/login"
}

// Resolve tries each identifier space in priority order, short-circuiting on
// the first hit. A 401 at any step halts the whole sequence: the session is
// gone and the remaining endpoints would only answer 401 as well.
//
// Transport errors, non-2xx responses and undecodable bodies are all misses
// for that step. There are no retries; a failed attempt is final for this
// lookup. Initiation is always user-triggered, so the user simply scans
// again.
func (r *Resolver) Resolve(ctx context.Context, code string) model.LookupOutcome {
	for _, s := range r.strategies {
		reqURL := r.baseURL + fmt.Sprintf(s.path, url.PathEscape(code))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			log.Printf("WARN: building %s lookup request for %q: %v", s.name, code, err)
			continue
		}

		resp, err := r.client.Do(req)
		if err != nil {
			log.Printf("WARN: %s lookup for %q failed: %v", s.name, code, err)
			continue
		}

		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			return model.LookupOutcome{Kind: model.OutcomeAuthRequired}
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			continue
		}

		var art model.Article
		err = json.NewDecoder(resp.Body).Decode(&art)
		resp.Body.Close()
		if err != nil {
			log.Printf("WARN: decoding %s lookup response for %q: %v", s.name, code, err)
			continue
		}

		return model.LookupOutcome{Kind: model.OutcomeFound, Article: &art}
	}

	return model.LookupOutcome{Kind: model.OutcomeNotFound}
}
