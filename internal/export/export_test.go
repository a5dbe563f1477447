package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"image/gif"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

func traceOf(t *testing.T, alg sorting.Algorithm, input []int) []sorting.Step {
	t.Helper()
	steps, err := sorting.Trace(alg, input)
	require.NoError(t, err)
	return steps
}

func TestNewTrace(t *testing.T) {
	input := []int{5, 3, 1}
	data := NewTrace(sorting.Bubble, input, traceOf(t, sorting.Bubble, input))

	assert.Equal(t, "bubble", data.Algorithm)
	assert.Equal(t, 3, data.Size)
	require.Len(t, data.Steps, 7)
	assert.Equal(t, "compare", data.Steps[0].Kind)
	assert.Equal(t, []string{"comparing", "comparing", "unsorted"}, data.Steps[0].Highlights)

	last := data.Steps[6]
	assert.True(t, last.Terminal)
	assert.Equal(t, []int{1, 3, 5}, last.Values)
	assert.Equal(t, 3.0, data.Metrics["comparisons"])
}

func TestWriteJSON(t *testing.T) {
	input := []int{2, 1}
	data := NewTrace(sorting.Merge, input, traceOf(t, sorting.Merge, input))

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, data))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "merge", raw["algorithm"])
	steps := raw["steps"].([]any)
	assert.Len(t, steps, 5)
	assert.Equal(t, "divide", steps[0].(map[string]any)["kind"])
}

func TestWriteCSV(t *testing.T) {
	input := []int{3, 1, 2}
	data := NewTrace(sorting.Quick, input, traceOf(t, sorting.Quick, input))

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, data))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(data.Steps)+1)
	assert.Equal(t, []string{"seq", "kind", "terminal", "description", "v0", "v1", "v2", "h0", "h1", "h2"}, rows[0])

	last := rows[len(rows)-1]
	assert.Equal(t, "done", last[1])
	assert.Equal(t, "true", last[2])
	assert.Equal(t, "Sorting complete!", last[3])
	assert.Equal(t, []string{"1", "2", "3", "sorted", "sorted", "sorted"}, last[4:])
}

func TestWrite_File(t *testing.T) {
	input := []int{4, 2, 3}
	data := NewTrace(sorting.Insertion, input, traceOf(t, sorting.Insertion, input))
	path := filepath.Join(t.TempDir(), "trace.json")

	require.NoError(t, Write(path, FormatJSON, data))
	assert.ErrorIs(t, Write(path, "xml", data), ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestStepToSVG(t *testing.T) {
	steps := traceOf(t, sorting.Bubble, []int{30, 10, 20})
	p := DefaultPalette()
	svg := StepToSVG(sorting.Bubble, steps[0], 400, 300, p)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "Bubble Sort")
	assert.Contains(t, svg, "Step 0: Comparing elements at index 0 and 1")
	assert.Equal(t, 3, strings.Count(svg, "<title>"))
	assert.Equal(t, 2, strings.Count(svg, `fill="`+p.Comparing+`"`))
}

func TestLayout(t *testing.T) {
	assert.Nil(t, layout(nil, 100, 100, 10))

	bars := layout([]int{50, 100}, 100, 100, 10)
	require.Len(t, bars, 2)
	assert.Equal(t, 40, bars[0].h)
	assert.Equal(t, 80, bars[1].h)
	assert.Equal(t, 90, bars[0].y+bars[0].h)
	assert.Less(t, bars[0].x+bars[0].w, bars[1].x+1)
}

func TestPalette(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Sorted, p.For(sorting.Sorted))
	assert.Equal(t, p.Unsorted, p.For(sorting.Category(42)))
	assert.Len(t, p.colors(), 2+len(sorting.Categories()))

	c := parseHex("#10b981")
	assert.Equal(t, uint8(0x10), c.R)
	assert.Equal(t, uint8(0xb9), c.G)
	assert.Equal(t, uint8(0x81), c.B)
	assert.Equal(t, uint8(0xff), parseHex("bogus").A)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(120, 80, 5, DefaultPalette())

	var buf bytes.Buffer
	assert.ErrorIs(t, rec.Encode(&buf), ErrNoFrames)

	d, err := driver.New(driver.Options{Size: 8})
	require.NoError(t, err)
	d.AddObserver(rec)
	require.NoError(t, d.StartRun(sorting.Insertion, []int{4, 3, 2, 1}))
	n := 0
	for _, st := d.Tick(); st == driver.StatusStep; _, st = d.Tick() {
		n++
	}
	assert.Equal(t, n, rec.Frames())

	require.NoError(t, rec.Encode(&buf))
	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, anim.Image, n)
	assert.Equal(t, 150, anim.Delay[n-1])
	assert.Equal(t, 5, anim.Delay[0])

	require.NoError(t, d.StartRun(sorting.Insertion, []int{1}))
	assert.Zero(t, rec.Frames())

	assert.ErrorIs(t, rec.Save(filepath.Join(t.TempDir(), "out.gif")), ErrNoFrames)
}
