package profile

import (
	"fmt"

	"github.com/sells-group/brandkit-cli/internal/model"
)

// Static defaults used when no source provides real content. These are
// deliberately fixed, clearly-labeled placeholders — per-business copy
// is never invented here.
const (
	defaultPrimaryColor = "#1a3a5c"
	defaultAccentColor  = "#f59e0b"
	surfaceColor        = "#f8fafc"

	defaultFontSans   = `"Inter", ui-sans-serif, system-ui, sans-serif`
	defaultFontSerif  = `"Playfair Display", ui-serif, Georgia, serif`
	defaultFontImport = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600&family=Playfair+Display:ital,wght@0,700;1,700&display=swap"

	badgeText       = "PROFESSIONAL CLEANING SERVICES"
	heroImage       = "https://images.unsplash.com/photo-1581578731548-c64695cc6952?q=80&w=2070&auto=format&fit=crop"
	defaultRatingAv = "5.0"
)

func defaultHero(city string) model.Hero {
	return model.Hero{
		BackgroundImage: heroImage,
		BackgroundAlt:   fmt.Sprintf("Professional cleaning team at work in %s", city),
		CTAPrimary:      "Get a Free Quote",
		CTASecondary:    "Call Us Now",
	}
}

func defaultServices(city string) []model.ServiceItem {
	return []model.ServiceItem{
		{
			Title:       "Commercial Cleaning",
			Description: fmt.Sprintf("Professional commercial cleaning for offices, shops, and business premises in %s. Reliable, vetted staff delivering consistent results.", city),
			Image:       "https://images.unsplash.com/photo-1497366216548-37526070297c?q=80&w=2301&auto=format&fit=crop",
			Alt:         "Clean professional office environment",
		},
		{
			Title:       "Deep Cleaning",
			Description: "Intensive deep clean services for premises that need a thorough refresh. Industrial-grade equipment and eco-friendly products used throughout.",
			Image:       "https://images.unsplash.com/photo-1584622650111-993a426fbf0a?q=80&w=2070&auto=format&fit=crop",
			Alt:         "Professional deep cleaning in progress",
		},
		{
			Title:       "Regular Maintenance",
			Description: "Scheduled maintenance cleaning to keep your premises spotless day after day. Flexible scheduling to minimise disruption to your business.",
			Image:       "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?q=80&w=2070&auto=format&fit=crop",
			Alt:         "Regular maintenance cleaning service",
		},
	}
}

func defaultPricing() []model.PricingPlan {
	return []model.PricingPlan{
		{
			Name:        "Regular Contract",
			Description: "Scheduled ongoing cleaning",
			Features: []string{
				"Flexible daily or weekly schedule",
				"Dedicated cleaning team",
				"All equipment included",
				"Fully insured staff",
			},
		},
		{
			Name:        "Bespoke Package",
			Description: "Tailored to your requirements",
			Features: []string{
				"Custom cleaning plan",
				"Free site assessment",
				"Vetted & DBS-checked staff",
				"Quality guarantee",
			},
			Highlight: true,
		},
		{
			Name:        "One-Off Deep Clean",
			Description: "Intensive single session",
			Features: []string{
				"Full premises deep clean",
				"Industrial-grade equipment",
				"Eco-friendly products",
				"Weekend availability",
			},
		},
	}
}

func defaultReviews(city string) []model.ReviewSnippet {
	return []model.ReviewSnippet{
		{
			Name:   "Google Reviewer",
			Text:   fmt.Sprintf("Excellent service — very professional and reliable. Would highly recommend to anyone needing quality cleaning services in %s.", city),
			Rating: 5,
		},
		{
			Name:   "Google Reviewer",
			Text:   "Very impressed with the standard of work. The team was punctual, thorough and friendly. Will definitely be using again.",
			Rating: 5,
		},
		{
			Name:   "Google Reviewer",
			Text:   "Reliable, professional service. Our premises have never looked better. Great value for money.",
			Rating: 5,
		},
	}
}

func defaultAreas(city string) []string {
	return []string{
		city,
		"Uxbridge",
		"Hillingdon",
		"Hayes",
		"West Drayton",
		"Ickenham",
		"Harefield",
	}
}
