package sorting

import "fmt"

type framePhase int

const (
	frameDivide framePhase = iota
	frameLeft
	frameRight
	frameMerge
)

// mergeFrame is one pending sort(l, r) call.
type mergeFrame struct {
	l, m, r int
	phase   framePhase
}

// mergeJob is an in-progress merge(l, m, r). left and right are copies of
// the two runs; after every write arr[l..r] holds the merged prefix
// followed by whatever is left of both runs.
type mergeJob struct {
	l, m, r     int
	left, right []int
	i, j, k     int
	compared    bool
}

// mergeStepper is top-down merge sort driven by an explicit frame stack.
// It keeps no persistent Sorted set: every comparison starts from an
// all-Unsorted baseline.
type mergeStepper struct {
	run
	stack []mergeFrame
	job   *mergeJob
}

func newMerge(arr []int) *mergeStepper {
	s := &mergeStepper{run: newRun(Merge, arr)}
	s.stack = append(s.stack, mergeFrame{l: 0, r: len(arr) - 1})
	return s
}

func (s *mergeStepper) Advance() (Step, bool) {
	for !s.done {
		if s.job != nil {
			if step, ok := s.stepJob(); ok {
				return step, true
			}
			s.job = nil
			continue
		}
		if len(s.stack) == 0 {
			break
		}

		top := len(s.stack) - 1
		f := s.stack[top]
		switch f.phase {
		case frameDivide:
			if f.l >= f.r {
				s.stack = s.stack[:top]
				continue
			}
			m := (f.l + f.r) / 2
			s.stack[top].m = m
			s.stack[top].phase = frameLeft
			s.hl.Reset()
			return s.emit(KindDivide, fmt.Sprintf("Dividing array at index %d", m)), true
		case frameLeft:
			s.stack[top].phase = frameRight
			s.stack = append(s.stack, mergeFrame{l: f.l, r: f.m})
		case frameRight:
			s.stack[top].phase = frameMerge
			s.stack = append(s.stack, mergeFrame{l: f.m + 1, r: f.r})
		case frameMerge:
			s.stack = s.stack[:top]
			s.job = s.newJob(f.l, f.m, f.r)
		}
	}
	return s.finish()
}

func (s *mergeStepper) newJob(l, m, r int) *mergeJob {
	left := make([]int, m-l+1)
	right := make([]int, r-m)
	copy(left, s.arr[l:m+1])
	copy(right, s.arr[m+1:r+1])
	return &mergeJob{l: l, m: m, r: r, left: left, right: right, k: l}
}

// stepJob advances the current merge by one step; false once both runs
// are drained.
func (s *mergeStepper) stepJob() (Step, bool) {
	job := s.job
	if job.compared {
		job.compared = false
		if job.left[job.i] <= job.right[job.j] {
			job.i++
			return s.write(job.left[job.i-1]), true
		}
		job.j++
		return s.write(job.right[job.j-1]), true
	}

	if job.i < len(job.left) && job.j < len(job.right) {
		s.hl.Reset()
		s.hl[job.k] = Comparing
		s.hl[job.k+len(job.left)-job.i] = Comparing
		job.compared = true
		return s.emit(KindCompare, fmt.Sprintf("Comparing %d and %d", job.left[job.i], job.right[job.j])), true
	}

	switch {
	case job.i < len(job.left):
		job.i++
		return s.write(job.left[job.i-1]), true
	case job.j < len(job.right):
		job.j++
		return s.write(job.right[job.j-1]), true
	}
	return Step{}, false
}

// write places v at the next output slot and lays the unmerged remainder
// of both runs out behind it.
func (s *mergeStepper) write(v int) Step {
	job := s.job
	k := job.k
	s.arr[k] = v
	rest := s.arr[k+1 : job.r+1]
	n := copy(rest, job.left[job.i:])
	copy(rest[n:], job.right[job.j:])
	s.hl[k] = Swapping
	job.k++
	return s.emit(KindWrite, fmt.Sprintf("Writing %d to index %d", v, k))
}
