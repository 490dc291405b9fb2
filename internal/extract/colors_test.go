package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColors_FiltersNeutrals(t *testing.T) {
	html := `<html><head><style>
		.a { color: #FFFFFF; }
		.b { background: #000000; }
		.c { border-color: #808080; }
		.d { color: #D45544; }
		.e { background: #D45544; }
	</style></head>
	<body><div style="color: #D45544"></div></body></html>`

	assert.Equal(t, []string{"#D45544"}, Colors(html))
}

func TestColors_FrequencyRanked(t *testing.T) {
	html := `<style>
		.a { color: #1A3A5C; }
		.b { color: #F59E0B; } .c { color: #F59E0B; }
	</style>`

	assert.Equal(t, []string{"#F59E0B", "#1A3A5C"}, Colors(html))
}

func TestColors_ExpandsShorthand(t *testing.T) {
	// #d33 expands to #DD3333.
	html := `<div style="color: #d33"></div>`
	assert.Equal(t, []string{"#DD3333"}, Colors(html))
}

func TestColors_CapAtThree(t *testing.T) {
	html := `<style>
		.a { color: #D45544; } .a2 { color: #D45544; } .a3 { color: #D45544; }
		.b { color: #1A3A5C; } .b2 { color: #1A3A5C; }
		.c { color: #F59E0B; }
		.d { color: #2E7D32; }
	</style>`

	got := Colors(html)
	assert.Equal(t, []string{"#D45544", "#1A3A5C"}, got[:2])
	assert.Len(t, got, 3)
}

func TestColors_IgnoresBodyText(t *testing.T) {
	// Hex literals outside style blocks and style attributes don't count.
	html := `<p>Our favourite color is #D45544.</p>`
	assert.Empty(t, Colors(html))
}

func TestColors_NoColors(t *testing.T) {
	assert.Empty(t, Colors("<html><body>plain</body></html>"))
	assert.Empty(t, Colors(""))
}

func TestColors_GreySpread(t *testing.T) {
	// Spread of 19 is grey, 20 is color (mid-brightness values).
	grey := `<div style="color: #707080"></div>`       // span 16
	justColor := `<div style="color: #707090"></div>`  // span 32
	assert.Empty(t, Colors(grey))
	assert.Equal(t, []string{"#707090"}, Colors(justColor))
}

func TestColors_LargeInput(t *testing.T) {
	var b strings.Builder
	for n := 0; n < 500; n++ {
		b.WriteString(`<div style="color: #D45544"></div>`)
	}
	assert.Equal(t, []string{"#D45544"}, Colors(b.String()))
}
