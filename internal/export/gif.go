package export

import (
	"errors"
	"image"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

// ErrNoFrames is returned when encoding a recorder that captured nothing.
var ErrNoFrames = errors.New("export: no frames captured")

const (
	idxBackground = iota
	idxPanel
	idxCategory
)

// Recorder captures one GIF frame per step. It is a driver observer and
// starts over when a new run begins.
type Recorder struct {
	width, height int
	delay         int
	palette       Palette
	frames        []*image.Paletted
}

// NewRecorder records width×height frames shown for delay hundredths of a
// second each.
func NewRecorder(width, height, delay int, p Palette) *Recorder {
	return &Recorder{
		width:   width,
		height:  height,
		delay:   max(delay, 1),
		palette: p,
	}
}

func (r *Recorder) OnStep(_ sorting.Algorithm, s sorting.Step) { r.Capture(s) }

func (r *Recorder) OnRunStart(sorting.Algorithm, []int)          { r.Reset() }
func (r *Recorder) OnRunEnd(sorting.Algorithm, driver.EndReason) {}

func (r *Recorder) Frames() int { return len(r.frames) }
func (r *Recorder) Reset()      { r.frames = r.frames[:0] }

func (r *Recorder) Capture(s sorting.Step) {
	const margin = 8

	img := image.NewPaletted(image.Rect(0, 0, r.width, r.height), r.palette.colors())
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			idx := uint8(idxPanel)
			if x < margin/2 || y < margin/2 || x >= r.width-margin/2 || y >= r.height-margin/2 {
				idx = idxBackground
			}
			img.SetColorIndex(x, y, idx)
		}
	}

	for i, b := range layout(s.Values, r.width, r.height, margin) {
		c := sorting.Unsorted
		if i < len(s.Highlights) {
			c = s.Highlights[i]
		}
		idx := uint8(idxCategory + int(c))
		for y := b.y; y < b.y+b.h; y++ {
			for x := b.x; x < b.x+b.w; x++ {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
	r.frames = append(r.frames, img)
}

// Encode writes the captured frames as a looping GIF. The last frame is held
// longer so the sorted array stays visible.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for i, frame := range r.frames {
		delay := r.delay
		if i == len(r.frames)-1 {
			delay = max(delay, 150)
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
