package sorting

import (
	"fmt"
	"slices"
)

// Algorithm identifies one of the supported sorting algorithms.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
)

const completeDescription = "Sorting complete!"

// Stepper produces the steps of one algorithm over one array.
//
// Advance resumes the algorithm where it last suspended and returns the
// next step. Once the terminal step has been returned every further call
// reports false; a stepper is never restarted.
type Stepper interface {
	Algorithm() Algorithm
	Advance() (Step, bool)
}

var constructors = map[Algorithm]func(arr []int) Stepper{
	Bubble:    func(arr []int) Stepper { return newBubble(arr) },
	Insertion: func(arr []int) Stepper { return newInsertion(arr) },
	Merge:     func(arr []int) Stepper { return newMerge(arr) },
	Quick:     func(arr []int) Stepper { return newQuick(arr) },
}

// New binds a stepper for alg to arr. The stepper sorts arr in place.
func New(alg Algorithm, arr []int) (Stepper, error) {
	fn, ok := constructors[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	return fn(arr), nil
}

// Trace runs alg to exhaustion over a copy of values and returns every step.
func Trace(alg Algorithm, values []int) ([]Step, error) {
	s, err := New(alg, slices.Clone(values))
	if err != nil {
		return nil, err
	}
	var steps []Step
	for step, ok := s.Advance(); ok; step, ok = s.Advance() {
		steps = append(steps, step)
	}
	return steps, nil
}

// run holds what every stepper shares: the live array, the current
// highlight state and the step counter.
type run struct {
	alg  Algorithm
	arr  []int
	hl   Highlights
	seq  int
	done bool
}

func newRun(alg Algorithm, arr []int) run {
	return run{alg: alg, arr: arr, hl: NewHighlights(len(arr))}
}

func (r *run) Algorithm() Algorithm { return r.alg }

func (r *run) emit(kind Kind, desc string) Step {
	s := Step{
		Seq:         r.seq,
		Kind:        kind,
		Values:      slices.Clone(r.arr),
		Highlights:  r.hl.Clone(),
		Description: desc,
	}
	r.seq++
	return s
}

// finish returns the terminal step exactly once, then reports exhaustion.
func (r *run) finish() (Step, bool) {
	if r.done {
		return Step{}, false
	}
	r.done = true
	r.hl.Fill(Sorted)
	s := r.emit(KindDone, completeDescription)
	s.Terminal = true
	return s, true
}

func (r *run) swap(i, j int) {
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
}
