// Package fetch retrieves raw HTML for the extraction pipeline. All
// failure modes degrade to empty content; callers treat "" as a normal
// outcome, never an error.
package fetch

import (
	"context"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
)

// Fetcher returns the body of a URL as text, or "" on any failure.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) string
}

// Options configures the HTTP fetcher.
type Options struct {
	UserAgent    string
	Timeout      time.Duration
	MaxRedirects int
	MaxBodyBytes int64
}

// HTTPFetcher implements Fetcher using net/http. Redirects are followed
// manually so the depth cap and Location resolution stay under our
// control; the body is capped to avoid memory blow-up on adversarial
// responses.
type HTTPFetcher struct {
	client *http.Client
	opts   Options
}

// NewHTTPFetcher creates an HTTPFetcher with the given options.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = 2
	}
	if opts.MaxBodyBytes == 0 {
		opts.MaxBodyBytes = 200_000
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; BrandkitBot/1.0)"
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: opts.Timeout,
				}).DialContext,
				TLSHandshakeTimeout: opts.Timeout,
			},
		},
		opts: opts,
	}
}

// Fetch retrieves a URL, following up to MaxRedirects redirects. Any
// error along the way yields "".
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) string {
	current := rawURL
	for depth := 0; depth <= f.opts.MaxRedirects; depth++ {
		body, next, ok := f.attempt(ctx, current)
		if !ok {
			return ""
		}
		if next == "" {
			return body
		}
		current = next
	}
	zap.L().Debug("fetch: redirect cap exceeded", zap.String("url", rawURL))
	return ""
}

// attempt performs a single request. It returns either a body, or the
// resolved redirect target, or ok=false on failure.
func (f *HTTPFetcher) attempt(ctx context.Context, rawURL string) (body, next string, ok bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		zap.L().Debug("fetch: bad url", zap.String("url", rawURL), zap.Error(err))
		return "", "", false
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		zap.L().Debug("fetch: request failed", zap.String("url", rawURL), zap.Error(err))
		return "", "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		loc := resp.Header.Get("Location")
		if loc == "" {
			return "", "", false
		}
		target, err := resolveLocation(rawURL, loc)
		if err != nil {
			zap.L().Debug("fetch: bad redirect target", zap.String("location", loc), zap.Error(err))
			return "", "", false
		}
		return "", target, true
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes))
	if err != nil {
		// Keep whatever was read before the failure.
		if len(raw) == 0 {
			zap.L().Debug("fetch: read body", zap.String("url", rawURL), zap.Error(err))
			return "", "", false
		}
	}
	return decodeBody(raw, resp.Header.Get("Content-Type")), "", true
}

// resolveLocation resolves a Location header against the current URL.
func resolveLocation(current, location string) (string, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return location, nil
	}
	base, err := url.Parse(current)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// decodeBody converts the body to UTF-8 using the Content-Type charset
// when one is declared. Unknown charsets fall back to the raw bytes.
func decodeBody(raw []byte, contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return string(raw)
	}
	cs, ok := params["charset"]
	if !ok || strings.EqualFold(cs, "utf-8") {
		return string(raw)
	}
	enc, err := htmlindex.Get(cs)
	if err != nil {
		return string(raw)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
