package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/brandkit-cli/internal/checkpoint"
	"github.com/sells-group/brandkit-cli/internal/config"
	"github.com/sells-group/brandkit-cli/internal/fetch"
	"github.com/sells-group/brandkit-cli/internal/model"
	"github.com/sells-group/brandkit-cli/internal/profile"
)

const sampleSite = `<!DOCTYPE html>
<html>
<head>
<meta name="description" content="Trusted commercial cleaning across Manchester since 2009.">
<link href="https://fonts.googleapis.com/css2?family=Inter&family=Playfair+Display" rel="stylesheet">
<style>
body { background: #D45544; color: #D45544; }
h1 { color: #336699; }
</style>
</head>
<body>
<img class="site-logo" src="/assets/logo.png" alt="Owl Cleaning">
<h1>Owl Cleaning Services</h1>
</body>
</html>`

type stubResolver struct {
	result *model.FallbackSignals
	calls  int
}

func (s *stubResolver) Lookup(_ context.Context, _, _ string) *model.FallbackSignals {
	s.calls++
	return s.result
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Output:     config.OutputConfig{Dir: filepath.Join(t.TempDir(), "configs")},
		Checkpoint: config.CheckpointConfig{Driver: "file", Path: filepath.Join(t.TempDir(), "progress.json")},
		Search:     config.SearchConfig{CooldownMS: 0},
		Batch:      config.BatchConfig{DelayMS: 0, MinRating: 3.0},
	}
}

func newTestPipeline(t *testing.T, cfg *config.Config, resolver FallbackResolver) (*Pipeline, checkpoint.Store) {
	t.Helper()
	store := checkpoint.NewFileStore(cfg.Checkpoint.Path)
	t.Cleanup(func() { _ = store.Close() })
	p := New(cfg, fetch.NewHTTPFetcher(fetch.Options{}), resolver, store, profile.NewWriter(cfg.Output.Dir))
	return p, store
}

func TestProcessFullRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleSite))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	resolver := &stubResolver{}
	p, store := newTestPipeline(t, cfg, resolver)

	rec := model.BusinessRecord{
		Name:    "Owl Cleaning Services",
		City:    "Manchester",
		Website: srv.URL,
		Phone:   "07700 900123",
		Rating:  "4.8",
	}

	result, err := p.Process(context.Background(), rec, false)
	require.NoError(t, err)
	assert.Equal(t, "owl-cleaning", result.Slug)
	assert.False(t, result.Skipped)
	assert.False(t, result.UsedFallback, "two colors extracted, no fallback needed")
	assert.Equal(t, 0, result.Placeholders)
	assert.Equal(t, 0, resolver.calls)

	data, err := os.ReadFile(result.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#D45544")
	assert.Contains(t, string(data), "Trusted commercial cleaning")
	assert.NotContains(t, string(data), "REVIEW: placeholder, no source data")

	done, err := store.Completed(context.Background(), "owl-cleaning")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestProcessSkipsCompleted(t *testing.T) {
	cfg := testConfig(t)
	p, store := newTestPipeline(t, cfg, &stubResolver{})

	require.NoError(t, store.MarkCompleted(context.Background(), "owl-cleaning"))

	result, err := p.Process(context.Background(), model.BusinessRecord{Name: "Owl Cleaning Services"}, false)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, result.ArtifactPath)
}

func TestProcessForceReprocesses(t *testing.T) {
	cfg := testConfig(t)
	resolver := &stubResolver{}
	p, store := newTestPipeline(t, cfg, resolver)

	require.NoError(t, store.MarkCompleted(context.Background(), "owl-cleaning"))

	result, err := p.Process(context.Background(), model.BusinessRecord{Name: "Owl Cleaning Services"}, true)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.NotEmpty(t, result.ArtifactPath)
}

func TestProcessNoWebsiteBlockedFallback(t *testing.T) {
	cfg := testConfig(t)
	resolver := &stubResolver{result: nil}
	p, _ := newTestPipeline(t, cfg, resolver)

	rec := model.BusinessRecord{Name: "Owl Cleaning Services", City: "Leeds"}
	result, err := p.Process(context.Background(), rec, false)
	require.NoError(t, err)
	assert.True(t, result.UsedFallback == false, "nil lookup result means no fallback data")
	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, 5, result.Placeholders, "every extraction-fed field is a placeholder")

	data, err := os.ReadFile(result.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "REVIEW: placeholder, no source data")
}

func TestProcessFallbackOnEmptyFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK) // empty body, below the usable threshold
	}))
	defer srv.Close()

	cfg := testConfig(t)
	resolver := &stubResolver{result: &model.FallbackSignals{
		Description: "Family-run office cleaning serving Leeds and the surrounding area.",
	}}
	p, _ := newTestPipeline(t, cfg, resolver)

	rec := model.BusinessRecord{Name: "Owl Cleaning Services", City: "Leeds", Website: srv.URL}
	result, err := p.Process(context.Background(), rec, false)
	require.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, 1, resolver.calls)

	data, err := os.ReadFile(result.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Family-run office cleaning")
}

func TestProcessFallbackOnZeroColors(t *testing.T) {
	// The page fetches fine but carries no usable palette, which still
	// triggers the search fallback.
	page := `<html><head><title>Hi</title></head><body>` +
		`<p>Plenty of text here but not a single styled element in sight, just words.</p>` +
		`</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	resolver := &stubResolver{}
	p, _ := newTestPipeline(t, cfg, resolver)

	rec := model.BusinessRecord{Name: "Owl Cleaning Services", Website: srv.URL}
	_, err := p.Process(context.Background(), rec, false)
	require.NoError(t, err)
	assert.Equal(t, 1, resolver.calls)
}

func TestRunBatchSecondRunProcessesNothing(t *testing.T) {
	cfg := testConfig(t)
	p, _ := newTestPipeline(t, cfg, &stubResolver{})

	records := []model.BusinessRecord{
		{Name: "Owl Cleaning Services", Website: "127.0.0.1:1", Rating: "4.5"},
		{Name: "Alb Shining Cleaning Services Ltd", Website: "127.0.0.1:1", Rating: "4.0"},
	}

	first, err := p.RunBatch(context.Background(), records, BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Processed)

	second, err := p.RunBatch(context.Background(), records, BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 2, second.Skipped)
}

func TestRunBatchResumesAfterInterrupt(t *testing.T) {
	cfg := testConfig(t)
	records := []model.BusinessRecord{
		{Name: "Owl Cleaning Services", Website: "127.0.0.1:1"},
		{Name: "Alb Shining Cleaning Services Ltd", Website: "127.0.0.1:1"},
		{Name: "RT Office Cleaning Ltd", Website: "127.0.0.1:1"},
	}

	// First run handles only the first item, as if the process died
	// before reaching the rest.
	p1, store1 := newTestPipeline(t, cfg, &stubResolver{})
	summary, err := p1.RunBatch(context.Background(), records, BatchOptions{Limit: 1})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)
	require.NoError(t, store1.Close())

	// A fresh pipeline over the same checkpoint picks up where the
	// first left off.
	store2 := checkpoint.NewFileStore(cfg.Checkpoint.Path)
	defer store2.Close()
	p2 := New(cfg, fetch.NewHTTPFetcher(fetch.Options{}), &stubResolver{}, store2, profile.NewWriter(cfg.Output.Dir))

	summary, err = p2.RunBatch(context.Background(), records, BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Skipped)
}

func TestRunBatchSkipsIneligible(t *testing.T) {
	cfg := testConfig(t)
	p, _ := newTestPipeline(t, cfg, &stubResolver{})

	records := []model.BusinessRecord{
		{Name: "No Website Ltd", Rating: "5.0"},
		{Name: "Low Rated Cleaning", Website: "127.0.0.1:1", Rating: "2.1"},
		{Name: "Owl Cleaning Services", Website: "127.0.0.1:1", Rating: "4.8"},
	}

	summary, err := p.RunBatch(context.Background(), records, BatchOptions{MinRating: 3.0})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
}

func TestRunBatchFailureDoesNotHalt(t *testing.T) {
	cfg := testConfig(t)
	// Point the output dir at an existing file so every artifact write
	// fails.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	cfg.Output.Dir = blocker

	store := checkpoint.NewFileStore(cfg.Checkpoint.Path)
	defer store.Close()
	p := New(cfg, fetch.NewHTTPFetcher(fetch.Options{}), &stubResolver{}, store, profile.NewWriter(cfg.Output.Dir))

	records := []model.BusinessRecord{
		{Name: "Owl Cleaning Services", Website: "127.0.0.1:1"},
		{Name: "RT Office Cleaning Ltd", Website: "127.0.0.1:1"},
	}

	summary, err := p.RunBatch(context.Background(), records, BatchOptions{})
	require.NoError(t, err, "item failures are absorbed, not returned")
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 0, summary.Processed)

	state, err := store.State(context.Background())
	require.NoError(t, err)
	assert.True(t, state.HasFailed("owl-cleaning"))
	assert.True(t, state.HasFailed("rt-office"))
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		rec  model.BusinessRecord
		want bool
	}{
		{"website and good rating", model.BusinessRecord{Website: "https://a.example", Rating: "4.5"}, true},
		{"no website", model.BusinessRecord{Rating: "5.0"}, false},
		{"below minimum rating", model.BusinessRecord{Website: "https://a.example", Rating: "2.9"}, false},
		{"unparseable rating passes", model.BusinessRecord{Website: "https://a.example", Rating: "n/a"}, true},
		{"missing rating passes", model.BusinessRecord{Website: "https://a.example"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.rec, 3.0))
		})
	}
}

func TestEnsureScheme(t *testing.T) {
	assert.Equal(t, "https://owlclean.co.uk", ensureScheme("owlclean.co.uk"))
	assert.Equal(t, "http://owlclean.co.uk", ensureScheme("http://owlclean.co.uk"))
	assert.Equal(t, "https://owlclean.co.uk", ensureScheme("https://owlclean.co.uk"))
}
