package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// logoTokens mark an <img> as a likely logo when they appear anywhere in
// its attributes (class, id, src, alt, ...).
var logoTokens = []string{"logo", "brand", "header-img"}

// Logo scans <img> tags for one that looks like the site logo and
// returns its src resolved against the page's base URL. Data URIs are
// skipped; "" means no logo was found.
func Logo(html, baseURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var found string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !looksLikeLogo(s) {
			return true
		}
		src, ok := s.Attr("src")
		if !ok || src == "" || strings.HasPrefix(src, "data:") {
			return true
		}
		resolved := resolveSrc(src, baseURL)
		if resolved == "" {
			return true
		}
		found = resolved
		return false
	})
	return found
}

func looksLikeLogo(s *goquery.Selection) bool {
	if len(s.Nodes) == 0 {
		return false
	}
	for _, attr := range s.Nodes[0].Attr {
		blob := strings.ToLower(attr.Key + "=" + attr.Val)
		for _, token := range logoTokens {
			if strings.Contains(blob, token) {
				return true
			}
		}
	}
	return false
}

// resolveSrc turns absolute, protocol-relative, and relative image paths
// into absolute URLs.
func resolveSrc(src, baseURL string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
