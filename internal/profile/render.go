package profile

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/brandkit-cli/internal/model"
)

const reviewMarker = "REVIEW: placeholder, no source data"

// Sections that always carry fixed default content until an operator
// personalizes them.
var staticSections = []string{"hero", "services", "pricing", "areas"}

// Render serializes a Profile as a YAML artifact: a provenance header
// comment block, the profile body, and an inline review marker on every
// placeholder field so the template consumer can spot unverified data.
func Render(p *model.Profile) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(p); err != nil {
		return nil, eris.Wrap(err, "profile: encode yaml")
	}

	node.HeadComment = headerComment(p)

	for _, path := range p.Placeholders {
		annotate(&node, strings.Split(path, "."), reviewMarker)
	}
	if !p.Reviews.Real {
		annotate(&node, []string{"reviews", "items"}, "REVIEW: replace with real review text")
	}
	for _, section := range staticSections {
		annotate(&node, []string{section}, "REVIEW: default content, personalize before deploying")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, eris.Wrap(err, "profile: marshal yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, eris.Wrap(err, "profile: close encoder")
	}
	return buf.Bytes(), nil
}

// headerComment builds the provenance banner rendered above the body.
func headerComment(p *model.Profile) string {
	bar := strings.Repeat("=", 60)
	return strings.Join([]string{
		bar,
		strings.ToUpper(p.Identity.CompanyNameFull),
		fmt.Sprintf("Generated %s (run %s)", p.Provenance.GeneratedAt.Format("2006-01-02 15:04:05 UTC"), p.Provenance.RunID),
		fmt.Sprintf("Source: %s", p.Provenance.SourceURL),
		fmt.Sprintf("Google: %s★ | %d reviews", p.Provenance.Rating, p.Provenance.ReviewCount),
		fmt.Sprintf("%d fields need manual review", p.PlaceholderCount()),
		bar,
	}, "\n")
}

// annotate attaches a line comment to the key node at the given path
// inside a mapping tree. Unknown paths are ignored.
func annotate(node *yaml.Node, path []string, comment string) {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Value != path[0] {
			continue
		}
		if len(path) == 1 {
			key.LineComment = comment
			return
		}
		annotate(value, path[1:], comment)
		return
	}
}
