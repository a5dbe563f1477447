// Package export writes runs to files: step traces as JSON or CSV, single
// steps as SVG and whole runs as animated GIF.
package export

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Palette holds hex colors for rendered frames.
type Palette struct {
	Background string
	Panel      string
	Text       string
	Unsorted   string
	Comparing  string
	Swapping   string
	Sorted     string
}

// DefaultPalette is indigo/amber/red/green bars on dark gray.
func DefaultPalette() Palette {
	return Palette{
		Background: "#1f2937",
		Panel:      "#374151",
		Text:       "#fde047",
		Unsorted:   "#6366f1",
		Comparing:  "#f59e0b",
		Swapping:   "#ef4444",
		Sorted:     "#10b981",
	}
}

func (p Palette) For(c sorting.Category) string {
	switch c {
	case sorting.Comparing:
		return p.Comparing
	case sorting.Swapping:
		return p.Swapping
	case sorting.Sorted:
		return p.Sorted
	default:
		return p.Unsorted
	}
}

// colors returns the GIF palette: background, panel, then one entry per
// category in sorting.Categories order.
func (p Palette) colors() color.Palette {
	pal := color.Palette{parseHex(p.Background), parseHex(p.Panel)}
	for _, c := range sorting.Categories() {
		pal = append(pal, parseHex(p.For(c)))
	}
	return pal
}

func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

type rect struct{ x, y, w, h int }

// layout places one bar per value inside a w×h area with a margin, bars
// scaled to the largest value.
func layout(values []int, w, h, margin int) []rect {
	n := len(values)
	if n == 0 {
		return nil
	}
	peak := 1
	for _, v := range values {
		peak = max(peak, v)
	}

	innerW, innerH := w-2*margin, h-2*margin
	slot := max(innerW/n, 1)
	gap := 0
	if slot > 3 {
		gap = max(slot/8, 1)
	}

	out := make([]rect, n)
	for i, v := range values {
		bh := max(v, 0) * innerH / peak
		out[i] = rect{
			x: margin + i*slot,
			y: margin + innerH - bh,
			w: slot - gap,
			h: bh,
		}
	}
	return out
}
