package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/sorting"
)

func TestRender(t *testing.T) {
	r := NewLiveRenderer(&bytes.Buffer{}, 4, 0)
	step := sorting.Step{
		Seq:         3,
		Values:      []int{40, 10, 20},
		Highlights:  sorting.Highlights{sorting.Comparing, sorting.Comparing, sorting.Unsorted},
		Description: "Comparing elements at index 0 and 1",
	}

	frame := r.Render(sorting.Quick, step)
	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")

	require.Len(t, lines, 1+1+4+1+1+1)
	assert.Contains(t, lines[0], "Quick Sort")
	assert.Contains(t, lines[0], "step 3")
	assert.Contains(t, lines[7], "Comparing elements at index 0 and 1")
	for _, c := range sorting.Categories() {
		assert.Contains(t, lines[8], c.String())
	}

	// the tallest bar fills every row, the shortest only the bottom one
	assert.Equal(t, 1, strings.Count(lines[2], bar))
	assert.Equal(t, 3, strings.Count(lines[5], bar))
}

func TestOnStep_Throttle(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, 4, 1)
	step := sorting.Step{Values: []int{1, 2}, Highlights: sorting.NewHighlights(2)}

	r.OnStep(sorting.Bubble, step)
	r.OnStep(sorting.Bubble, step)
	assert.Equal(t, 1, strings.Count(out.String(), clearScreen))

	step.Terminal = true
	r.OnStep(sorting.Bubble, step)
	assert.Equal(t, 2, strings.Count(out.String(), clearScreen))
}

func TestStartStop(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, 4, 0)
	r.Start()
	r.Stop()
	assert.Equal(t, hideCursor+showCursor, out.String())
}
