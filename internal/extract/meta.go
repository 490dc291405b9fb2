package extract

import (
	"regexp"
	"strings"
)

// Both attribute orders occur in the wild: name before content and the
// reverse. Placeholder-length contents are rejected by the caller's
// minimum length, not the pattern.
var (
	metaDescRe    = regexp.MustCompile(`(?i)<meta\s[^>]*?name\s*=\s*["']description["'][^>]*?content\s*=\s*["']([^"']*)["']`)
	metaDescRevRe = regexp.MustCompile(`(?i)<meta\s[^>]*?content\s*=\s*["']([^"']*)["'][^>]*?name\s*=\s*["']description["']`)
)

// MetaDescription returns the page's meta description when it is at
// least minLen characters long, regardless of attribute order.
func MetaDescription(html string, minLen int) string {
	for _, re := range []*regexp.Regexp{metaDescRe, metaDescRevRe} {
		if m := re.FindStringSubmatch(html); len(m) > 1 {
			content := strings.TrimSpace(m[1])
			if len(content) >= minLen {
				return content
			}
		}
	}
	return ""
}
