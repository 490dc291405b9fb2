package pipeline

import (
	"regexp"
	"strings"
)

var (
	legalSuffixRe  = regexp.MustCompile(`(?i)\s+(ltd\.?|limited|llc|inc\.?|plc|co\.?)$`)
	nonAlphaNumRe  = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// genericWords are filler words deprioritized so distinguishing words
// appear first in the slug.
var genericWords = map[string]bool{
	"cleaning":    true,
	"services":    true,
	"company":     true,
	"group":       true,
	"contractors": true,
	"maintenance": true,
	"solutions":   true,
}

// Slug derives the canonical identifier for a business name:
// "Owl Cleaning Services" → "owl-cleaning". Pure and deterministic;
// distinct businesses can collide, and the artifact keyed by the slug
// is simply overwritten (documented limitation).
func Slug(name string) string {
	cleaned := strings.TrimSpace(legalSuffixRe.ReplaceAllString(name, ""))
	cleaned = nonAlphaNumRe.ReplaceAllString(strings.ToLower(cleaned), "")
	words := whitespaceRe.Split(strings.TrimSpace(cleaned), -1)

	var significant []string
	for _, w := range words {
		if w != "" && !genericWords[w] {
			significant = append(significant, w)
		}
	}

	switch {
	case len(significant) >= 2:
		return significant[0] + "-" + significant[1]
	case len(significant) == 1:
		// Pair the lone distinguishing word with the first other word.
		for _, w := range words {
			if w != "" && w != significant[0] {
				return significant[0] + "-" + w
			}
		}
		return significant[0] + "-cleaning"
	default:
		var raw []string
		for _, w := range words {
			if w != "" {
				raw = append(raw, w)
			}
		}
		if len(raw) >= 2 {
			return raw[0] + "-" + raw[1]
		}
		return strings.Join(raw, "-")
	}
}
