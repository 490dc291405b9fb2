package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogo(t *testing.T) {
	base := "https://owlcleaning.example/about"

	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			"class token, absolute src",
			`<img class="site-logo" src="https://cdn.example/owl.png">`,
			"https://cdn.example/owl.png",
		},
		{
			"relative src resolved against base",
			`<img id="brand-mark" src="/assets/logo.svg">`,
			"https://owlcleaning.example/assets/logo.svg",
		},
		{
			"protocol-relative src",
			`<img alt="logo" src="//cdn.example/owl.png">`,
			"https://cdn.example/owl.png",
		},
		{
			"header-img token",
			`<img class="header-img" src="banner.jpg">`,
			"https://owlcleaning.example/banner.jpg",
		},
		{
			"data uri skipped, next match wins",
			`<img class="logo" src="data:image/png;base64,AAAA">
			 <img class="logo-alt" src="/logo2.png">`,
			"https://owlcleaning.example/logo2.png",
		},
		{
			"no logo-ish img",
			`<img class="hero" src="/hero.jpg">`,
			"",
		},
		{
			"img without src",
			`<img class="logo">`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Logo(tt.html, base))
		})
	}
}

func TestAll_FullPage(t *testing.T) {
	html := `<html><head>
		<meta name="description" content="Trusted office cleaning across West London.">
		<link href="https://fonts.googleapis.com/css2?family=Inter" rel="stylesheet">
		<style>.btn { background: #D45544; }</style>
	</head><body>
		<img class="navbar-logo" src="/img/logo.png">
	</body></html>`

	sig := All(html, "https://rtoffice.example")
	assert.Equal(t, []string{"#D45544"}, sig.Colors)
	assert.NotNil(t, sig.Fonts)
	assert.Equal(t, "Trusted office cleaning across West London.", sig.MetaDescription)
	assert.Equal(t, "https://rtoffice.example/img/logo.png", sig.LogoURL)
	assert.False(t, sig.Empty())
}

func TestAll_EmptyPage(t *testing.T) {
	sig := All("", "https://x.example")
	assert.True(t, sig.Empty())
}
