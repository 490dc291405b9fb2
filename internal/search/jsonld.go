package search

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/brandkit-cli/internal/model"
)

const (
	defaultReviewer   = "Google Reviewer"
	defaultRating     = 5
	minReviewTextLen  = 20
	maxReviewsPerItem = 4
)

var jsonLDRe = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)

// parseStructuredData walks every JSON-LD block on the page and pulls
// description, opening hours, and reviews from business-typed items.
// Malformed blocks are skipped individually.
func parseStructuredData(html string) model.FallbackSignals {
	var out model.FallbackSignals
	for _, m := range jsonLDRe.FindAllStringSubmatch(html, -1) {
		var node any
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &node); err != nil {
			continue
		}
		for _, item := range flattenItems(node) {
			if !isBusinessType(item["@type"]) {
				continue
			}
			if out.Description == "" {
				if d, ok := item["description"].(string); ok {
					out.Description = strings.TrimSpace(d)
				}
			}
			if out.Hours == "" {
				out.Hours = joinHours(item["openingHours"])
			}
			out.Reviews = append(out.Reviews, itemReviews(item)...)
		}
	}
	return out
}

// flattenItems normalizes a decoded JSON-LD root into a flat item list:
// a bare object, an array of objects, or an object with an @graph.
func flattenItems(node any) []map[string]any {
	switch v := node.(type) {
	case []any:
		var items []map[string]any
		for _, el := range v {
			if m, ok := el.(map[string]any); ok {
				items = append(items, m)
			}
		}
		return items
	case map[string]any:
		items := []map[string]any{v}
		if graph, ok := v["@graph"].([]any); ok {
			for _, el := range graph {
				if m, ok := el.(map[string]any); ok {
					items = append(items, m)
				}
			}
		}
		return items
	default:
		return nil
	}
}

// isBusinessType accepts LocalBusiness, Organization, and Service types,
// whether declared as a single string or within an array.
func isBusinessType(t any) bool {
	switch v := t.(type) {
	case string:
		return businessTypeName(v)
	case []any:
		for _, el := range v {
			if s, ok := el.(string); ok && businessTypeName(s) {
				return true
			}
		}
	}
	return false
}

func businessTypeName(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "localbusiness") ||
		strings.Contains(lower, "organization") ||
		strings.Contains(lower, "service")
}

// joinHours joins openingHours declarations, which may be a string or an
// array of strings.
func joinHours(v any) string {
	switch h := v.(type) {
	case string:
		return h
	case []any:
		var parts []string
		for _, el := range h {
			if s, ok := el.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// itemReviews extracts up to maxReviewsPerItem reviews from a JSON-LD
// item, keeping only texts longer than minReviewTextLen.
func itemReviews(item map[string]any) []model.ReviewSnippet {
	raw := item["review"]
	if raw == nil {
		raw = item["reviews"]
	}

	var entries []any
	switch v := raw.(type) {
	case []any:
		entries = v
	case map[string]any:
		entries = []any{v}
	}
	if len(entries) > maxReviewsPerItem {
		entries = entries[:maxReviewsPerItem]
	}

	var out []model.ReviewSnippet
	for _, entry := range entries {
		rm, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		text, _ := rm["reviewBody"].(string)
		if text == "" {
			text, _ = rm["description"].(string)
		}
		if len(text) <= minReviewTextLen {
			continue
		}
		out = append(out, model.ReviewSnippet{
			Name:   reviewAuthor(rm),
			Text:   text,
			Rating: reviewRating(rm),
		})
	}
	return out
}

func reviewAuthor(rm map[string]any) string {
	if author, ok := rm["author"].(map[string]any); ok {
		if name, ok := author["name"].(string); ok && name != "" {
			return name
		}
	}
	return defaultReviewer
}

// reviewRating parses ratingValue, which shows up as a number or a
// string. Anything unparseable defaults to 5.
func reviewRating(rm map[string]any) int {
	rr, ok := rm["reviewRating"].(map[string]any)
	if !ok {
		return defaultRating
	}
	switch v := rr["ratingValue"].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(f)
		}
	}
	return defaultRating
}
