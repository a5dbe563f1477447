package sorting

import "fmt"

type insertionPhase int

const (
	insertionPick insertionPhase = iota
	insertionScan
	insertionPlace
)

// insertionStepper grows a sorted prefix one key at a time. The key travels
// left by exchanges with its larger neighbour, so the array is always a
// permutation of the input even between a shift and the final insert.
type insertionStepper struct {
	run
	i, j  int
	key   int
	phase insertionPhase
}

func newInsertion(arr []int) *insertionStepper {
	return &insertionStepper{run: newRun(Insertion, arr), i: 1}
}

func (s *insertionStepper) Advance() (Step, bool) {
	n := len(s.arr)
	for s.i < n {
		switch s.phase {
		case insertionPick:
			s.key = s.arr[s.i]
			s.j = s.i - 1
			s.markPrefix(s.i - 1)
			s.hl[s.i] = Comparing
			s.phase = insertionScan
			return s.emit(KindPick, fmt.Sprintf("Picking element %d to insert into sorted portion", s.key)), true

		case insertionScan:
			if s.j < 0 || s.arr[s.j] <= s.key {
				s.phase = insertionPlace
				continue
			}
			j := s.j
			s.hl[j] = Swapping
			s.hl[j+1] = Swapping
			desc := fmt.Sprintf("Shifting %d to the right", s.arr[j])
			s.swap(j, j+1)
			s.j--
			return s.emit(KindShift, desc), true

		case insertionPlace:
			pos := s.j + 1
			s.arr[pos] = s.key
			s.markPrefix(s.i)
			s.i++
			s.phase = insertionPick
			return s.emit(KindInsert, fmt.Sprintf("Inserting %d at position %d", s.key, pos)), true
		}
	}
	return s.finish()
}

// markPrefix marks indices <= last Sorted and the rest Unsorted.
func (s *insertionStepper) markPrefix(last int) {
	for x := range s.hl {
		if x <= last {
			s.hl[x] = Sorted
		} else {
			s.hl[x] = Unsorted
		}
	}
}
