package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/sells-group/brandkit-cli/internal/model"
)

var (
	fontURLRe     = regexp.MustCompile(`https://fonts\.googleapis\.com/css2?\?[^"'\s>]+`)
	familyParamRe = regexp.MustCompile(`family=([^&:|"'\s>]+)`)
)

// Fonts looks for a Google Fonts stylesheet reference and parses the
// requested family names from its query string. The stylesheet URL is
// preserved verbatim so the profile can import the exact same set.
func Fonts(html string) *model.FontSignal {
	raw := fontURLRe.FindString(html)
	if raw == "" {
		return nil
	}
	stylesheetURL := strings.ReplaceAll(raw, "&amp;", "&")

	var families []string
	for _, m := range familyParamRe.FindAllStringSubmatch(stylesheetURL, -1) {
		name := strings.ReplaceAll(m[1], "+", " ")
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}
		families = append(families, name)
	}
	if len(families) == 0 {
		return nil
	}
	return &model.FontSignal{URL: stylesheetURL, Families: families}
}
