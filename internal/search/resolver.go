// Package search implements the fallback resolver: when a business's own
// site is absent or uninformative, a search-engine result page is mined
// for structured metadata and visible review snippets.
package search

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/sells-group/brandkit-cli/internal/extract"
	"github.com/sells-group/brandkit-cli/internal/fetch"
	"github.com/sells-group/brandkit-cli/internal/model"
)

// fallbackDescriptionLen is stricter than the primary-site threshold;
// search result pages are full of short boilerplate meta tags.
const fallbackDescriptionLen = 20

// Resolver queries the search engine and extracts fallback signals.
// Callers are expected to apply a cooldown delay after every Lookup —
// the search provider blocks fast clients. That pacing lives in the
// orchestrator, not here.
type Resolver struct {
	fetcher  fetch.Fetcher
	baseURL  string
	minBytes int
}

// NewResolver creates a Resolver on top of the given fetcher. Pages
// shorter than minBytes are treated as blocked.
func NewResolver(fetcher fetch.Fetcher, baseURL string, minBytes int) *Resolver {
	if minBytes <= 0 {
		minBytes = 500
	}
	return &Resolver{fetcher: fetcher, baseURL: baseURL, minBytes: minBytes}
}

// Lookup fetches the search result page for a business and extracts
// whatever it can. A blocked or empty page yields nil, never an error.
func (r *Resolver) Lookup(ctx context.Context, name, city string) *model.FallbackSignals {
	q := url.Values{}
	q.Set("q", name+" "+city+" cleaning")
	q.Set("hl", "en")
	searchURL := r.baseURL + "?" + q.Encode()

	log := zap.L().With(zap.String("company", name))
	log.Debug("search: querying fallback source", zap.String("url", searchURL))

	html := r.fetcher.Fetch(ctx, searchURL)
	if len(html) < r.minBytes {
		log.Warn("search: fallback source blocked or empty", zap.Int("bytes", len(html)))
		return nil
	}

	signals := Parse(html)
	log.Info("search: fallback extraction done", zap.Int("data_points", signals.DataPoints()))
	return &signals
}

// Parse extracts fallback signals from a search result page. Structured
// data wins; the meta description and visible quotes only fill gaps.
func Parse(html string) model.FallbackSignals {
	signals := parseStructuredData(html)

	if signals.Description == "" {
		signals.Description = extract.MetaDescription(html, fallbackDescriptionLen)
	}
	if len(signals.Reviews) == 0 {
		signals.Reviews = mineQuotedReviews(html)
	}
	return signals
}
