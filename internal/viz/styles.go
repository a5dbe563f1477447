package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are rebuilt whenever the theme changes.
type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	panel     lipgloss.Style
	info      lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	desc      lipgloss.Style
	muted     lipgloss.Style
	running   lipgloss.Style
	stopped   lipgloss.Style
	errorText lipgloss.Style
	graph     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Panel).
			Padding(0, 1),
		info: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(infoWidth),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		desc:      lipgloss.NewStyle().Foreground(t.Accent),
		muted:     lipgloss.NewStyle().Foreground(t.Muted),
		running:   lipgloss.NewStyle().Bold(true).Foreground(t.Sorted),
		stopped:   lipgloss.NewStyle().Bold(true).Foreground(t.Comparing),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		graph:     lipgloss.NewStyle().Foreground(t.Secondary),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	if len(text) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	runes := []rune(text)
	n := max(len(runes)-1, 1)

	for i, c := range runes {
		t := float64(i) / float64(n)
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b))).Bold(true)
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// ProgressBar renders percent in [0,1] as a width-cell bar.
func ProgressBar(percent float64, width int, fill lipgloss.Style) string {
	filled := min(max(int(percent*float64(width)), 0), width)
	return fill.Render(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = min(max(v, 0), 255)
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
