package extract

import "github.com/sells-group/brandkit-cli/internal/model"

// minDescriptionLen rejects placeholder or empty meta description tags
// on a business's own site.
const minDescriptionLen = 10

// All runs every extractor over one fetched page.
func All(html, baseURL string) model.ExtractedSignals {
	return model.ExtractedSignals{
		Colors:          Colors(html),
		Fonts:           Fonts(html),
		MetaDescription: MetaDescription(html, minDescriptionLen),
		LogoURL:         Logo(html, baseURL),
	}
}
