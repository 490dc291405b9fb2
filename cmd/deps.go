package main

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/brandkit-cli/internal/checkpoint"
	"github.com/sells-group/brandkit-cli/internal/fetch"
	"github.com/sells-group/brandkit-cli/internal/leads"
	"github.com/sells-group/brandkit-cli/internal/model"
	"github.com/sells-group/brandkit-cli/internal/pipeline"
	"github.com/sells-group/brandkit-cli/internal/profile"
	"github.com/sells-group/brandkit-cli/internal/search"
)

// loadLeads reads the configured lead list.
func loadLeads() ([]model.BusinessRecord, error) {
	records, err := leads.Load(cfg.Leads.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "load leads %s", cfg.Leads.Path)
	}
	return records, nil
}

// initCheckpoint opens the configured progress store.
func initCheckpoint() (checkpoint.Store, error) {
	store, err := checkpoint.Open(cfg.Checkpoint)
	if err != nil {
		return nil, eris.Wrap(err, "open checkpoint store")
	}
	return store, nil
}

// buildPipeline wires the processing pipeline from config. The caller
// owns the returned checkpoint store and must Close it.
func buildPipeline() (*pipeline.Pipeline, checkpoint.Store, error) {
	store, err := initCheckpoint()
	if err != nil {
		return nil, nil, err
	}

	fetcher := fetch.NewHTTPFetcher(fetch.Options{
		UserAgent:    cfg.Fetch.UserAgent,
		Timeout:      cfg.Fetch.FetchTimeout(),
		MaxRedirects: cfg.Fetch.MaxRedirects,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
	})
	resolver := search.NewResolver(fetcher, cfg.Search.BaseURL, cfg.Search.MinBytes)
	writer := profile.NewWriter(cfg.Output.Dir)

	return pipeline.New(cfg, fetcher, resolver, store, writer), store, nil
}
