package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFonts_CSS2Link(t *testing.T) {
	html := `<link href="https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;700&amp;family=Lato&amp;display=swap" rel="stylesheet">`

	sig := Fonts(html)
	require.NotNil(t, sig)
	assert.Equal(t, []string{"Open Sans", "Lato"}, sig.Families)
	assert.Equal(t, "https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;700&family=Lato&display=swap", sig.URL)
}

func TestFonts_LegacyCSSEndpoint(t *testing.T) {
	html := `<link href="https://fonts.googleapis.com/css?family=Roboto" rel="stylesheet">`

	sig := Fonts(html)
	require.NotNil(t, sig)
	assert.Equal(t, []string{"Roboto"}, sig.Families)
}

func TestFonts_PercentEncoded(t *testing.T) {
	html := `<link href="https://fonts.googleapis.com/css2?family=Playfair%20Display" rel="stylesheet">`

	sig := Fonts(html)
	require.NotNil(t, sig)
	assert.Equal(t, []string{"Playfair Display"}, sig.Families)
}

func TestFonts_None(t *testing.T) {
	assert.Nil(t, Fonts(`<link href="https://example.com/styles.css">`))
	assert.Nil(t, Fonts(""))
}
