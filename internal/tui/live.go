// Package tui renders runs straight to a terminal with ANSI escapes, for
// headless commands that do not start the interactive app.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	bar = "█"
)

var categoryColors = map[sorting.Category]lipgloss.Color{
	sorting.Unsorted:  lipgloss.Color("#6366f1"),
	sorting.Comparing: lipgloss.Color("#f59e0b"),
	sorting.Swapping:  lipgloss.Color("#ef4444"),
	sorting.Sorted:    lipgloss.Color("#10b981"),
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#818cf8")).Bold(true)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fde047"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// LiveRenderer draws every step as a column chart. It is a driver observer.
type LiveRenderer struct {
	out       io.Writer
	height    int
	frameRate int
	lastFrame time.Time
	styles    map[sorting.Category]lipgloss.Style
}

// NewLiveRenderer draws height rows of bars to out (stdout when nil). A
// positive frameRate drops frames that arrive faster than that; the terminal
// step is always drawn.
func NewLiveRenderer(out io.Writer, height, frameRate int) *LiveRenderer {
	if out == nil {
		out = os.Stdout
	}
	styles := make(map[sorting.Category]lipgloss.Style, len(categoryColors))
	for c, col := range categoryColors {
		styles[c] = lipgloss.NewStyle().Foreground(col)
	}
	return &LiveRenderer{
		out:       out,
		height:    max(height, 4),
		frameRate: frameRate,
		styles:    styles,
	}
}

func (r *LiveRenderer) OnStep(alg sorting.Algorithm, s sorting.Step) {
	if r.frameRate > 0 && !s.Terminal {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()
	fmt.Fprint(r.out, clearScreen+r.Render(alg, s))
}

// Render returns the frame for s without any cursor control.
func (r *LiveRenderer) Render(alg sorting.Algorithm, s sorting.Step) string {
	var b strings.Builder
	width := 2 * len(s.Values)

	b.WriteString(fmt.Sprintf("  %s  %s\n", titleStyle.Render(alg.Name()), dimStyle.Render(fmt.Sprintf("step %d", s.Seq))))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	peak := 1
	for _, v := range s.Values {
		peak = max(peak, v)
	}
	for row := r.height; row > 0; row-- {
		b.WriteString("  ")
		for i, v := range s.Values {
			if v*r.height >= row*peak {
				b.WriteString(r.style(s, i).Render(bar))
			} else {
				b.WriteString(" ")
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString("  " + descStyle.Render(s.Description) + "\n")
	b.WriteString("  " + r.legend() + "\n")
	return b.String()
}

func (r *LiveRenderer) style(s sorting.Step, i int) lipgloss.Style {
	c := sorting.Unsorted
	if i < len(s.Highlights) {
		c = s.Highlights[i]
	}
	return r.styles[c]
}

func (r *LiveRenderer) legend() string {
	parts := make([]string, 0, len(categoryColors))
	for _, c := range sorting.Categories() {
		parts = append(parts, r.styles[c].Render(bar)+" "+dimStyle.Render(c.String()))
	}
	return strings.Join(parts, "  ")
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
