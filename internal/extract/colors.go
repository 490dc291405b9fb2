// Package extract holds the pure HTML heuristics that pull individual
// brand signals out of a fetched page. None of the extractors perform
// I/O, and every one of them may legitimately come back empty.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	styleBlockRe  = regexp.MustCompile(`(?is)<style[^>]*>(.*?)</style>`)
	inlineStyleRe = regexp.MustCompile(`(?i)style="[^"]*"`)
	hexColorRe    = regexp.MustCompile(`#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
)

// Near-neutral thresholds: colors brighter, darker, or flatter than
// these are page chrome, not brand.
const (
	brightnessCeil = 210
	brightnessFlr  = 35
	minChannelSpan = 20
)

// Colors returns up to three prominent non-neutral hex colors found in
// style blocks and inline style attributes, most frequent first.
func Colors(html string) []string {
	var sb strings.Builder
	for _, m := range styleBlockRe.FindAllStringSubmatch(html, -1) {
		sb.WriteString(m[1])
		sb.WriteByte(' ')
	}
	for _, m := range inlineStyleRe.FindAllString(html, -1) {
		sb.WriteString(m)
		sb.WriteByte(' ')
	}

	counts := make(map[string]int)
	var order []string
	for _, m := range hexColorRe.FindAllStringSubmatch(sb.String(), -1) {
		hex := expandHex(m[1])
		full := "#" + strings.ToUpper(hex)
		r, _ := strconv.ParseInt(hex[0:2], 16, 0)
		g, _ := strconv.ParseInt(hex[2:4], 16, 0)
		b, _ := strconv.ParseInt(hex[4:6], 16, 0)
		avg := (r + g + b) / 3
		span := max(r, g, b) - min(r, g, b)
		if avg > brightnessCeil || avg < brightnessFlr || span < minChannelSpan {
			continue
		}
		if counts[full] == 0 {
			order = append(order, full)
		}
		counts[full]++
	}

	// Rank by frequency, first-seen breaking ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 3 {
		order = order[:3]
	}
	return order
}

// expandHex turns a 3-digit shorthand into its 6-digit form.
func expandHex(hex string) string {
	if len(hex) != 3 {
		return hex
	}
	var b strings.Builder
	for _, c := range hex {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}
