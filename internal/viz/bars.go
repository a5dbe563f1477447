package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/sorting"
)

// eighths from one to seven eighths of a cell
var partial = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// renderBars draws values as vertical bars of height rows, barWidth cells
// wide with a one-cell gap, colored by their highlight category. Bar tops
// use eighth blocks so small value differences stay visible.
func renderBars(values []int, hl sorting.Highlights, height, barWidth int, t Theme) string {
	if len(values) == 0 || height <= 0 {
		return ""
	}
	barWidth = max(barWidth, 1)

	peak := 1
	for _, v := range values {
		peak = max(peak, v)
	}

	colStyles := make([]lipgloss.Style, len(values))
	levels := make([]int, len(values))
	for i, v := range values {
		c := sorting.Unsorted
		if i < len(hl) {
			c = hl[i]
		}
		colStyles[i] = lipgloss.NewStyle().Foreground(t.Color(c))
		levels[i] = max(v, 0) * height * 8 / peak
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		for i := range values {
			fill := levels[i] - row*8
			var cell string
			switch {
			case fill >= 8:
				cell = "█"
			case fill <= 0:
				cell = " "
			default:
				cell = string(partial[fill-1])
			}
			if cell == " " {
				b.WriteString(strings.Repeat(" ", barWidth))
			} else {
				b.WriteString(colStyles[i].Render(strings.Repeat(cell, barWidth)))
			}
			if i < len(values)-1 {
				b.WriteString(" ")
			}
		}
		if row > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// barWidthFor fits n bars with gaps into avail cells, at most three wide.
func barWidthFor(n, avail int) int {
	if n <= 0 {
		return 1
	}
	return min(max((avail-(n-1))/n, 1), 3)
}

func renderLegend(t Theme, muted lipgloss.Style) string {
	parts := make([]string, 0, 4)
	for _, c := range sorting.Categories() {
		sw := lipgloss.NewStyle().Foreground(t.Color(c)).Render("██")
		parts = append(parts, sw+" "+muted.Render(legendLabel(c)))
	}
	return strings.Join(parts, "   ")
}

func legendLabel(c sorting.Category) string {
	switch c {
	case sorting.Comparing:
		return "Comparing"
	case sorting.Swapping:
		return "Swapping"
	case sorting.Sorted:
		return "Sorted"
	default:
		return "Unsorted"
	}
}
