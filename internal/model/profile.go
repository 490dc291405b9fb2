package model

import "time"

// Identity holds the naming and meta strings of a brand profile.
type Identity struct {
	CompanyName     string `yaml:"company_name"`
	CompanyNameFull string `yaml:"company_name_full"`
	LogoInitial     string `yaml:"logo_initial"`
	LogoURL         string `yaml:"logo_url"`
	Tagline         string `yaml:"tagline"`
	SubTagline      string `yaml:"sub_tagline"`
	BadgeText       string `yaml:"badge_text"`
	MetaTitle       string `yaml:"meta_title"`
	MetaDescription string `yaml:"meta_description"`
}

// Styling holds the color and font choices of a brand profile.
type Styling struct {
	PrimaryColor      string `yaml:"primary_color"`
	AccentColor       string `yaml:"accent_color"`
	SurfaceColor      string `yaml:"surface_color"`
	FontSans          string `yaml:"font_sans"`
	FontSerif         string `yaml:"font_serif"`
	FontDisplay       string `yaml:"font_display"`
	GoogleFontsImport string `yaml:"google_fonts_import"`
}

// Contact holds verified contact details sourced from the lead list.
type Contact struct {
	Phone        string            `yaml:"phone"`
	PhoneTel     string            `yaml:"phone_tel"`
	Email        string            `yaml:"email"`
	Address      string            `yaml:"address"`
	AddressLine2 string            `yaml:"address_line2"`
	SocialMedia  map[string]string `yaml:"social_media,omitempty"`
}

// Hero holds the landing-page hero section content.
type Hero struct {
	BackgroundImage string `yaml:"background_image"`
	BackgroundAlt   string `yaml:"background_alt"`
	CTAPrimary      string `yaml:"cta_primary"`
	CTASecondary    string `yaml:"cta_secondary"`
}

// ServiceItem is one offered service in the profile.
type ServiceItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Alt         string `yaml:"alt"`
}

// PricingPlan is one pricing tier in the profile.
type PricingPlan struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Highlight   bool     `yaml:"highlight,omitempty"`
}

// ReviewBlock holds the reviews section. Real is true when the reviews
// came verbatim from the fallback source rather than the canned defaults.
type ReviewBlock struct {
	AverageRating string          `yaml:"average_rating"`
	Real          bool            `yaml:"real"`
	Items         []ReviewSnippet `yaml:"items"`
}

// Provenance records where and when a profile was generated from.
type Provenance struct {
	RunID       string    `yaml:"run_id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	SourceURL   string    `yaml:"source_url"` // "no website" when the lead had none
	Rating      string    `yaml:"rating"`
	ReviewCount int       `yaml:"review_count"`
}

// Profile is the complete merged brand configuration for one business.
// Every field the rendering template consumes is always populated; fields
// that could not be resolved from any source carry placeholder values and
// are listed in Placeholders for manual review.
type Profile struct {
	Slug        string        `yaml:"slug"`
	Provenance  Provenance    `yaml:"provenance"`
	Identity    Identity      `yaml:"identity"`
	Styling     Styling       `yaml:"styling"`
	Contact     Contact       `yaml:"contact"`
	Hero        Hero          `yaml:"hero"`
	Hours       string        `yaml:"hours,omitempty"`
	Services    []ServiceItem `yaml:"services"`
	Pricing     []PricingPlan `yaml:"pricing"`
	Reviews     ReviewBlock   `yaml:"reviews"`
	Areas       []string      `yaml:"areas"`
	Footer      string        `yaml:"footer"`
	TrustBadges []string      `yaml:"trust_badges"`

	// Placeholders lists the field paths that received default values.
	// Not serialized into the artifact body; the renderer turns each
	// entry into an inline review marker.
	Placeholders []string `yaml:"-"`
}

// PlaceholderCount returns how many fields need manual review.
func (p *Profile) PlaceholderCount() int {
	return len(p.Placeholders)
}

// NeedsReview reports whether the given field path was filled with a
// placeholder value.
func (p *Profile) NeedsReview(fieldPath string) bool {
	for _, f := range p.Placeholders {
		if f == fieldPath {
			return true
		}
	}
	return false
}
