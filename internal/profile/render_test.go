package profile

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/brandkit-cli/internal/model"
)

func TestRender_HeaderAndMarkers(t *testing.T) {
	p := Synthesize(model.BusinessRecord{Name: "Ghost Cleaning Ltd"}, model.ExtractedSignals{}, nil, "ghost-cleaning")

	data, err := Render(p)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "# GHOST CLEANING LTD")
	assert.Contains(t, text, "# Source: no website")
	assert.Contains(t, text, "# 5 fields need manual review")
	assert.Contains(t, text, "# Google: 5.0★ | 0 reviews")

	// One inline marker per placeholder field.
	assert.Equal(t, 5, strings.Count(text, reviewMarker))
	assert.Contains(t, text, "replace with real review text")
	assert.Contains(t, text, "default content, personalize before deploying")

	// The hero section is always emitted so the template never sees a
	// missing field.
	assert.Contains(t, text, "hero:")
	assert.Contains(t, text, "Get a Free Quote")
	assert.Contains(t, text, "Call Us Now")
}

func TestRender_NoMarkersWhenFullyResolved(t *testing.T) {
	fb := &model.FallbackSignals{
		Reviews: []model.ReviewSnippet{
			{Name: "A", Text: "first real review, long enough", Rating: 5},
			{Name: "B", Text: "second real review, long enough", Rating: 5},
			{Name: "C", Text: "third real review, long enough", Rating: 5},
		},
	}
	p := Synthesize(fullRecord(), fullSignals(), fb, "owl-cleaning")

	data, err := Render(p)
	require.NoError(t, err)
	text := string(data)

	assert.NotContains(t, text, reviewMarker)
	assert.NotContains(t, text, "replace with real review text")
	assert.Contains(t, text, "# 0 fields need manual review")
	assert.Contains(t, text, "# Source: https://owlcleaning.example")
}

func TestRender_RoundTrip(t *testing.T) {
	p := Synthesize(fullRecord(), fullSignals(), nil, "owl-cleaning")

	data, err := Render(p)
	require.NoError(t, err)

	var decoded model.Profile
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, p.Slug, decoded.Slug)
	assert.Equal(t, p.Identity, decoded.Identity)
	assert.Equal(t, p.Styling, decoded.Styling)
	assert.Equal(t, p.Contact, decoded.Contact)
	assert.Equal(t, p.Hero, decoded.Hero)
	assert.Equal(t, p.Reviews, decoded.Reviews)
	assert.Equal(t, p.Provenance.RunID, decoded.Provenance.RunID)
}

func TestWriter_AtomicWrite(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	p := Synthesize(fullRecord(), fullSignals(), nil, "owl-cleaning")

	assert.False(t, w.Exists("owl-cleaning"))

	path, err := w.Write(p)
	require.NoError(t, err)
	assert.Equal(t, w.Path("owl-cleaning"), path)
	assert.True(t, w.Exists("owl-cleaning"))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "owl-cleaning.yaml", entries[0].Name())
}

func TestWriter_OverwriteOnRegenerate(t *testing.T) {
	w := NewWriter(t.TempDir())
	p := Synthesize(fullRecord(), fullSignals(), nil, "owl-cleaning")

	_, err := w.Write(p)
	require.NoError(t, err)

	p2 := Synthesize(fullRecord(), model.ExtractedSignals{}, nil, "owl-cleaning")
	_, err = w.Write(p2)
	require.NoError(t, err)

	data, err := os.ReadFile(w.Path("owl-cleaning"))
	require.NoError(t, err)
	assert.Contains(t, string(data), reviewMarker)
}
