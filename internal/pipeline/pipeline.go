// Package pipeline sequences the per-business steps: slug, checkpoint
// skip check, website fetch, signal extraction, search fallback,
// profile synthesis, artifact write, checkpoint commit.
package pipeline

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/brandkit-cli/internal/checkpoint"
	"github.com/sells-group/brandkit-cli/internal/config"
	"github.com/sells-group/brandkit-cli/internal/extract"
	"github.com/sells-group/brandkit-cli/internal/fetch"
	"github.com/sells-group/brandkit-cli/internal/model"
	"github.com/sells-group/brandkit-cli/internal/profile"
)

// minUsablePage rejects near-empty fetch results before extraction.
const minUsablePage = 100

// FallbackResolver is the search-engine fallback contract. A nil result
// means the source was blocked or empty; that is not an error.
type FallbackResolver interface {
	Lookup(ctx context.Context, name, city string) *model.FallbackSignals
}

// Pipeline runs the extraction-and-synthesis flow for businesses.
// Processing is strictly sequential: the remote sources are rate
// sensitive and the client must look slow and human-paced.
type Pipeline struct {
	cfg      *config.Config
	fetcher  fetch.Fetcher
	resolver FallbackResolver
	store    checkpoint.Store
	writer   *profile.Writer
}

// New wires a Pipeline from its collaborators.
func New(cfg *config.Config, fetcher fetch.Fetcher, resolver FallbackResolver, store checkpoint.Store, writer *profile.Writer) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		fetcher:  fetcher,
		resolver: resolver,
		store:    store,
		writer:   writer,
	}
}

// Result describes the outcome of processing one business.
type Result struct {
	Slug         string
	Skipped      bool
	ArtifactPath string
	Placeholders int
	UsedFallback bool
}

// Process runs the full flow for one business. Fetch and extraction
// misses degrade to placeholders; only artifact or checkpoint write
// failures surface as errors, and those are recorded in the failed set.
func (p *Pipeline) Process(ctx context.Context, rec model.BusinessRecord, force bool) (*Result, error) {
	slug := Slug(rec.Name)
	log := zap.L().With(zap.String("company", rec.Name), zap.String("slug", slug))

	if !force {
		done, err := p.store.Completed(ctx, slug)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: checkpoint lookup")
		}
		if done {
			log.Info("pipeline: already completed, skipping")
			return &Result{Slug: slug, Skipped: true}, nil
		}
	}

	var signals model.ExtractedSignals
	websiteOK := false
	if rec.HasWebsite() {
		baseURL := ensureScheme(rec.Website)
		html := p.fetcher.Fetch(ctx, baseURL)
		if len(html) > minUsablePage {
			signals = extract.All(html, baseURL)
			websiteOK = true
			log.Info("pipeline: website scraped",
				zap.Int("colors", len(signals.Colors)),
				zap.Bool("fonts", signals.Fonts != nil),
				zap.Bool("logo", signals.LogoURL != ""),
			)
		} else {
			log.Warn("pipeline: website fetch empty, falling back to search")
		}
	}

	// Zero colors is the proxy for "the page yielded no usable brand
	// signal"; it triggers the fallback even when the fetch succeeded.
	var fb *model.FallbackSignals
	if !websiteOK || len(signals.Colors) == 0 {
		city := rec.City
		if city == "" {
			city = "London"
		}
		fb = p.resolver.Lookup(ctx, rec.Name, city)
		// The search provider blocks fast clients; cool down before
		// anything else hits the network.
		sleepCtx(ctx, p.cfg.Search.Cooldown())
	}

	prof := profile.Synthesize(rec, signals, fb, slug)

	path, err := p.writer.Write(prof)
	if err != nil {
		if markErr := p.store.MarkFailed(ctx, slug); markErr != nil {
			log.Warn("pipeline: failed to record failure", zap.Error(markErr))
		}
		return nil, eris.Wrapf(err, "pipeline: write artifact %s", slug)
	}

	if err := p.store.MarkCompleted(ctx, slug); err != nil {
		return nil, eris.Wrapf(err, "pipeline: mark completed %s", slug)
	}

	log.Info("pipeline: profile written",
		zap.String("path", path),
		zap.Int("placeholders", prof.PlaceholderCount()),
		zap.Bool("used_fallback", fb != nil),
	)
	return &Result{
		Slug:         slug,
		ArtifactPath: path,
		Placeholders: prof.PlaceholderCount(),
		UsedFallback: fb != nil,
	}, nil
}

// BatchOptions controls a batch run.
type BatchOptions struct {
	Force     bool
	Limit     int
	MinRating float64
}

// BatchSummary reports the outcome of a batch run.
type BatchSummary struct {
	Processed int
	Skipped   int
	Failed    int
}

// RunBatch processes records in source order. The checkpoint is
// persisted after every item, so an interruption loses at most the one
// in-flight business. Item failures never halt the batch.
func (p *Pipeline) RunBatch(ctx context.Context, records []model.BusinessRecord, opts BatchOptions) (*BatchSummary, error) {
	pace := rate.NewLimiter(rate.Every(p.cfg.Batch.Delay()), 1)

	summary := &BatchSummary{}
	processed := 0
	for _, rec := range records {
		if opts.Limit > 0 && processed >= opts.Limit {
			break
		}
		if !Eligible(rec, opts.MinRating) {
			summary.Skipped++
			continue
		}
		if err := pace.Wait(ctx); err != nil {
			return summary, eris.Wrap(err, "pipeline: batch interrupted")
		}

		result, err := p.Process(ctx, rec, opts.Force)
		if err != nil {
			summary.Failed++
			zap.L().Error("pipeline: business failed",
				zap.String("company", rec.Name),
				zap.Error(err),
			)
			processed++
			continue
		}
		if result.Skipped {
			summary.Skipped++
			continue
		}
		summary.Processed++
		processed++
	}
	return summary, nil
}

// Eligible reports whether a record qualifies for batch processing: it
// must have a website to scrape, and a known rating below the minimum
// excludes it.
func Eligible(rec model.BusinessRecord, minRating float64) bool {
	if !rec.HasWebsite() {
		return false
	}
	rating, err := strconv.ParseFloat(rec.Rating, 64)
	if err == nil && rating > 0 && rating < minRating {
		return false
	}
	return true
}

// ensureScheme defaults bare hostnames to https.
func ensureScheme(website string) string {
	if strings.HasPrefix(website, "http://") || strings.HasPrefix(website, "https://") {
		return website
	}
	return "https://" + website
}

// sleepCtx sleeps for d or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
