package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

// StepToSVG renders one step as bars colored by highlight category, with
// the algorithm name and step description as captions.
func StepToSVG(alg sorting.Algorithm, s sorting.Step, width, height int, p Palette) string {
	const (
		margin  = 20
		caption = 48
	)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, width, height, width, height, p.Background,
		margin/2, caption, width-margin, height-caption-margin/2, p.Panel))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" font-family="monospace" font-size="18" font-weight="bold" fill="%s">%s</text>
`, margin, p.Unsorted, html.EscapeString(alg.Name())))
	sb.WriteString(fmt.Sprintf(`<text x="%d" y="40" font-family="monospace" font-size="12" fill="%s">%s</text>
`, margin, p.Text, html.EscapeString(fmt.Sprintf("Step %d: %s", s.Seq, s.Description))))

	sb.WriteString(fmt.Sprintf(`<g transform="translate(0 %d)">
`, caption))
	for i, r := range layout(s.Values, width, height-caption, margin) {
		c := sorting.Unsorted
		if i < len(s.Highlights) {
			c = s.Highlights[i]
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"><title>%d</title></rect>
`, r.x, r.y, r.w, r.h, p.For(c), s.Values[i]))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
