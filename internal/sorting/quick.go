package sorting

import "fmt"

type quickPhase int

const (
	quickCompare quickPhase = iota
	quickSwap
	quickPlace
)

type span struct{ low, high int }

// partition is the Lomuto partition currently in progress over
// [low, high] with pivot arr[high]; i is the boundary of the < pivot side.
type partition struct {
	low, high int
	pivot     int
	i, j      int
	phase     quickPhase
}

// quickStepper is quicksort over an explicit stack of pending ranges.
// Placed pivots are final and stay Sorted for the rest of the run.
type quickStepper struct {
	run
	stack  []span
	final  []bool
	part   partition
	active bool
}

func newQuick(arr []int) *quickStepper {
	s := &quickStepper{
		run:   newRun(Quick, arr),
		final: make([]bool, len(arr)),
	}
	s.stack = append(s.stack, span{0, len(arr) - 1})
	return s
}

func (s *quickStepper) Advance() (Step, bool) {
	for !s.done {
		if s.active {
			if step, ok := s.stepPartition(); ok {
				return step, true
			}
			continue
		}
		if len(s.stack) == 0 {
			break
		}
		r := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if r.low >= r.high {
			continue
		}
		s.part = partition{low: r.low, high: r.high, pivot: s.arr[r.high], i: r.low - 1, j: r.low}
		s.active = true
		s.baseline()
		return s.emit(KindPivot, fmt.Sprintf("Choosing pivot: %d at index %d", s.part.pivot, r.high)), true
	}
	return s.finish()
}

// stepPartition runs the partition until it produces a step. It reports
// false only when it did internal bookkeeping without emitting.
func (s *quickStepper) stepPartition() (Step, bool) {
	p := &s.part
	switch p.phase {
	case quickCompare:
		if p.j >= p.high {
			p.phase = quickPlace
			return Step{}, false
		}
		s.baseline()
		s.hl[p.j] = Comparing
		s.hl[p.high] = Comparing
		p.phase = quickSwap
		return s.emit(KindCompare, fmt.Sprintf("Comparing %d with pivot %d", s.arr[p.j], p.pivot)), true

	case quickSwap:
		j := p.j
		p.j++
		p.phase = quickCompare
		if s.arr[j] >= p.pivot {
			return Step{}, false
		}
		p.i++
		if p.i == j {
			return Step{}, false
		}
		s.hl[p.i] = Swapping
		s.hl[j] = Swapping
		desc := fmt.Sprintf("Swapping %d and %d", s.arr[p.i], s.arr[j])
		s.swap(p.i, j)
		return s.emit(KindSwap, desc), true

	case quickPlace:
		pi := p.i + 1
		s.hl[pi] = Swapping
		s.hl[p.high] = Swapping
		s.swap(pi, p.high)
		step := s.emit(KindPlace, fmt.Sprintf("Placing pivot %d in correct position", p.pivot))
		s.final[pi] = true
		s.stack = append(s.stack, span{pi + 1, p.high}, span{p.low, pi - 1})
		s.active = false
		return step, true
	}
	return Step{}, false
}

// baseline marks placed pivots Sorted and everything else Unsorted.
func (s *quickStepper) baseline() {
	for i, ok := range s.final {
		if ok {
			s.hl[i] = Sorted
		} else {
			s.hl[i] = Unsorted
		}
	}
}
