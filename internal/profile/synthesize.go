// Package profile merges lead-list facts, primary-site signals, and
// fallback signals into one complete brand profile, and renders it as a
// per-slug artifact.
package profile

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/brandkit-cli/internal/model"
)

// genericSuffixRe strips a trailing generic word from the full company
// name when deriving the display name.
var genericSuffixRe = regexp.MustCompile(`(?i)\s+(Ltd\.?|Limited|Services|Cleaning|Company|Co\.?)$`)

var upper = cases.Upper(language.BritishEnglish)

// Placeholder field paths. CSV facts and always-canned creative content
// are not tracked here — only the fields the extractors could have
// resolved from a real source.
const (
	FieldPrimaryColor = "styling.primary_color"
	FieldAccentColor  = "styling.accent_color"
	FieldFontImport   = "styling.google_fonts_import"
	FieldLogoURL      = "identity.logo_url"
	FieldDescription  = "identity.meta_description"
)

// Synthesize merges all sources into a Profile. Priority per field:
// verified lead-list facts always win; primary-site signals beat
// fallback signals; fallback fills remaining gaps; anything still
// unresolved gets a fixed placeholder and is recorded in Placeholders.
func Synthesize(rec model.BusinessRecord, sig model.ExtractedSignals, fb *model.FallbackSignals, slug string) *model.Profile {
	city := rec.City
	if city == "" {
		city = "London"
	}
	rating := rec.Rating
	if rating == "" {
		rating = defaultRatingAv
	}

	p := &model.Profile{Slug: slug}

	sourceURL := rec.Website
	if sourceURL == "" {
		sourceURL = "no website"
	}
	p.Provenance = model.Provenance{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		SourceURL:   sourceURL,
		Rating:      rating,
		ReviewCount: rec.ReviewCount,
	}

	shortName := DisplayName(rec.Name)
	p.Identity = model.Identity{
		CompanyName:     upper.String(shortName),
		CompanyNameFull: rec.Name,
		LogoInitial:     initialOf(shortName),
		BadgeText:       badgeText,
		Tagline:         fmt.Sprintf("Professional Cleaning\nServices in %s", city),
		SubTagline:      fmt.Sprintf("Trusted, professional cleaning services for businesses and homes across %s. We deliver spotless results every time.", city),
		MetaTitle:       fmt.Sprintf("%s | Professional Cleaning Services %s", rec.Name, city),
	}

	// Description: primary site beats fallback; fallback is still real
	// data, not a placeholder.
	switch {
	case sig.MetaDescription != "":
		p.Identity.MetaDescription = sig.MetaDescription
	case fb != nil && fb.Description != "":
		p.Identity.MetaDescription = fb.Description
	default:
		p.Identity.MetaDescription = fmt.Sprintf("%s — Professional cleaning services in %s. Get a free quote today.", rec.Name, city)
		p.Placeholders = append(p.Placeholders, FieldDescription)
	}

	if sig.LogoURL != "" {
		p.Identity.LogoURL = sig.LogoURL
	} else {
		p.Placeholders = append(p.Placeholders, FieldLogoURL)
	}

	p.Styling = synthesizeStyling(sig, p)

	phone, tel := FormatPhone(rec.Phone)
	address := rec.Address
	if address == "" {
		address = city
	}
	p.Contact = model.Contact{
		Phone:        phone,
		PhoneTel:     tel,
		Email:        rec.Email,
		Address:      address,
		AddressLine2: city,
		SocialMedia:  socialLinks(rec),
	}

	if fb != nil {
		p.Hours = fb.Hours
	}

	p.Hero = defaultHero(city)
	p.Services = defaultServices(city)
	p.Pricing = defaultPricing()
	p.Areas = defaultAreas(city)
	p.Footer = fmt.Sprintf("%s — professional cleaning services you can trust. Fully insured, vetted staff, and a commitment to quality on every visit.", rec.Name)
	p.TrustBadges = []string{"Fully Insured", "Vetted Staff", rating + "★ Rated", "Free Quote"}

	p.Reviews = synthesizeReviews(fb, rating, city)

	return p
}

// synthesizeStyling picks colors and fonts, primary-site signals first.
func synthesizeStyling(sig model.ExtractedSignals, p *model.Profile) model.Styling {
	s := model.Styling{
		SurfaceColor: surfaceColor,
		FontSerif:    defaultFontSerif,
	}

	if len(sig.Colors) > 0 {
		s.PrimaryColor = sig.Colors[0]
	} else {
		s.PrimaryColor = defaultPrimaryColor
		p.Placeholders = append(p.Placeholders, FieldPrimaryColor)
	}
	if len(sig.Colors) > 1 {
		s.AccentColor = sig.Colors[1]
	} else {
		s.AccentColor = defaultAccentColor
		p.Placeholders = append(p.Placeholders, FieldAccentColor)
	}

	if sig.Fonts != nil && len(sig.Fonts.Families) > 0 {
		family := fmt.Sprintf("%q, ui-sans-serif, system-ui, sans-serif", sig.Fonts.Families[0])
		s.FontSans = family
		s.FontDisplay = family
		s.GoogleFontsImport = sig.Fonts.URL
	} else {
		s.FontSans = defaultFontSans
		s.FontDisplay = defaultFontSans
		s.GoogleFontsImport = defaultFontImport
		p.Placeholders = append(p.Placeholders, FieldFontImport)
	}

	return s
}

// synthesizeReviews uses fallback reviews verbatim when at least three
// are usable; otherwise tops up with the fixed defaults and flags the
// block for manual replacement.
func synthesizeReviews(fb *model.FallbackSignals, rating, city string) model.ReviewBlock {
	block := model.ReviewBlock{AverageRating: rating + "/5"}

	var real []model.ReviewSnippet
	if fb != nil {
		real = fb.Reviews
	}
	if len(real) >= 3 {
		block.Real = true
		block.Items = real[:3]
		return block
	}

	block.Items = append(block.Items, real...)
	for _, d := range defaultReviews(city) {
		if len(block.Items) == 3 {
			break
		}
		block.Items = append(block.Items, d)
	}
	return block
}

// socialLinks keeps only the links that look like URLs.
func socialLinks(rec model.BusinessRecord) map[string]string {
	social := make(map[string]string)
	for key, link := range map[string]string{
		"facebook":  rec.Facebook,
		"linkedin":  rec.LinkedIn,
		"instagram": rec.Instagram,
	} {
		if strings.Contains(link, "http") {
			social[key] = link
		}
	}
	if len(social) == 0 {
		return nil
	}
	return social
}

// DisplayName strips one trailing generic suffix word from the full
// company name: "Owl Cleaning Services" → "Owl Cleaning".
func DisplayName(name string) string {
	return strings.TrimSpace(genericSuffixRe.ReplaceAllString(name, ""))
}

func initialOf(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}
