package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/brandkit-cli/internal/model"
)

const maxMinedQuotes = 3

var (
	// Quoted text with review/rating context shortly after it.
	quotedSnippetRe = regexp.MustCompile(`(?i)"([^"]{40,200})"[^"]*?(star|review|rating)`)
	// Service-positive keywords a genuine cleaning review would contain.
	positiveKeywordRe = regexp.MustCompile(`(?i)clean|profess|recommend|service|great|excel`)
	unicodeEscapeRe   = regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)
)

// mineQuotedReviews scans visible page text for quoted snippets that
// read like reviews. Only used when structured data yielded nothing.
func mineQuotedReviews(html string) []model.ReviewSnippet {
	var out []model.ReviewSnippet
	for _, m := range quotedSnippetRe.FindAllStringSubmatch(html, -1) {
		if len(out) == maxMinedQuotes {
			break
		}
		text := decodeEntities(decodeUnicodeEscapes(m[1]))
		if !positiveKeywordRe.MatchString(text) {
			continue
		}
		out = append(out, model.ReviewSnippet{
			Name:   defaultReviewer,
			Text:   text,
			Rating: defaultRating,
		})
	}
	return out
}

// decodeUnicodeEscapes replaces \uXXXX sequences with their characters.
func decodeUnicodeEscapes(s string) string {
	return unicodeEscapeRe.ReplaceAllStringFunc(s, func(esc string) string {
		code, err := strconv.ParseUint(esc[2:], 16, 32)
		if err != nil {
			return esc
		}
		return string(rune(code))
	})
}

// Strings like "&#39;" appear in visible snippets too; decode the
// common entities before keyword matching.
func decodeEntities(s string) string {
	r := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return r.Replace(s)
}
