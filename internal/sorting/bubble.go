package sorting

import "fmt"

type bubblePhase int

const (
	bubbleCompare bubblePhase = iota
	bubbleSwap
)

// bubbleStepper walks pass i and pair (j, j+1). Indices >= n-i are final.
type bubbleStepper struct {
	run
	i, j  int
	phase bubblePhase
}

func newBubble(arr []int) *bubbleStepper {
	return &bubbleStepper{run: newRun(Bubble, arr)}
}

func (b *bubbleStepper) Advance() (Step, bool) {
	n := len(b.arr)
	for b.i < n-1 {
		switch b.phase {
		case bubbleCompare:
			if b.j >= n-1-b.i {
				b.hl[n-1-b.i] = Sorted
				b.i++
				b.j = 0
				continue
			}
			b.hl.Reset()
			for k := n - b.i; k < n; k++ {
				b.hl[k] = Sorted
			}
			b.hl[b.j] = Comparing
			b.hl[b.j+1] = Comparing
			b.phase = bubbleSwap
			return b.emit(KindCompare, fmt.Sprintf("Comparing elements at index %d and %d", b.j, b.j+1)), true

		case bubbleSwap:
			j := b.j
			b.phase = bubbleCompare
			b.j++
			if b.arr[j] > b.arr[j+1] {
				b.hl[j] = Swapping
				b.hl[j+1] = Swapping
				desc := fmt.Sprintf("Swapping %d and %d", b.arr[j], b.arr[j+1])
				b.swap(j, j+1)
				return b.emit(KindSwap, desc), true
			}
		}
	}
	return b.finish()
}
