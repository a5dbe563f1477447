package sorting

import "slices"

// Category is the highlight state of a single index.
type Category int

const (
	Unsorted Category = iota
	Comparing
	Swapping
	Sorted
)

func (c Category) String() string {
	switch c {
	case Unsorted:
		return "unsorted"
	case Comparing:
		return "comparing"
	case Swapping:
		return "swapping"
	case Sorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// Categories lists every category in legend order.
func Categories() []Category {
	return []Category{Unsorted, Comparing, Swapping, Sorted}
}

// Highlights maps every index of the array to a category.
type Highlights []Category

func NewHighlights(n int) Highlights {
	return make(Highlights, n)
}

func (h Highlights) Clone() Highlights {
	return slices.Clone(h)
}

// Reset sets every index back to Unsorted.
func (h Highlights) Reset() {
	for i := range h {
		h[i] = Unsorted
	}
}

// Fill sets every index to c.
func (h Highlights) Fill(c Category) {
	for i := range h {
		h[i] = c
	}
}

// Count returns how many indices are in category c.
func (h Highlights) Count(c Category) int {
	n := 0
	for _, v := range h {
		if v == c {
			n++
		}
	}
	return n
}

// Kind classifies what a step did.
type Kind int

const (
	KindCompare Kind = iota
	KindSwap
	KindShift
	KindPick
	KindInsert
	KindDivide
	KindWrite
	KindPivot
	KindPlace
	KindDone
)

var kindNames = [...]string{
	KindCompare: "compare",
	KindSwap:    "swap",
	KindShift:   "shift",
	KindPick:    "pick",
	KindInsert:  "insert",
	KindDivide:  "divide",
	KindWrite:   "write",
	KindPivot:   "pivot",
	KindPlace:   "place",
	KindDone:    "done",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Mutates reports whether steps of this kind move or write elements.
func (k Kind) Mutates() bool {
	switch k {
	case KindSwap, KindShift, KindWrite, KindPlace:
		return true
	}
	return false
}

// Step is one observable unit of algorithm progress. Values and Highlights
// are copies taken when the step was produced.
type Step struct {
	Seq         int
	Kind        Kind
	Values      []int
	Highlights  Highlights
	Description string
	Terminal    bool
}

// Len returns the array length captured by the step.
func (s Step) Len() int { return len(s.Values) }
