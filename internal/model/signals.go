package model

// FontSignal holds a web-font stylesheet reference scraped from a site.
// URL is kept verbatim so the generated profile can reuse the exact import.
type FontSignal struct {
	URL      string   `json:"url"`
	Families []string `json:"families"`
}

// ExtractedSignals collects the best-effort brand signals pulled from a
// business's own website. Every field is optional; an empty value is a
// normal outcome, not an error.
type ExtractedSignals struct {
	Colors          []string    `json:"colors,omitempty"` // most frequent first, max 3
	Fonts           *FontSignal `json:"fonts,omitempty"`
	MetaDescription string      `json:"meta_description,omitempty"`
	LogoURL         string      `json:"logo_url,omitempty"`
}

// Empty reports whether no signal of any category was extracted.
func (s ExtractedSignals) Empty() bool {
	return len(s.Colors) == 0 && s.Fonts == nil && s.MetaDescription == "" && s.LogoURL == ""
}

// ReviewSnippet is a single review pulled from the fallback source.
type ReviewSnippet struct {
	Name   string `json:"name" yaml:"name"`
	Text   string `json:"text" yaml:"text"`
	Rating int    `json:"rating" yaml:"rating"`
}

// FallbackSignals holds data recovered from the search-engine result page
// when the primary site was absent or uninformative.
type FallbackSignals struct {
	Description string          `json:"description,omitempty"`
	Reviews     []ReviewSnippet `json:"reviews,omitempty"`
	Hours       string          `json:"hours,omitempty"`
}

// DataPoints counts the non-empty fields, for operator-visible logging.
func (f FallbackSignals) DataPoints() int {
	n := 0
	if f.Description != "" {
		n++
	}
	if len(f.Reviews) > 0 {
		n++
	}
	if f.Hours != "" {
		n++
	}
	return n
}
