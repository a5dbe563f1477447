package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wantStep struct {
	kind   Kind
	values []int
	hl     Highlights
	desc   string
}

const (
	U = Unsorted
	C = Comparing
	W = Swapping
	S = Sorted
)

func assertTrace(t *testing.T, alg Algorithm, input []int, want []wantStep) {
	t.Helper()
	steps, err := Trace(alg, input)
	require.NoError(t, err)
	require.Len(t, steps, len(want))
	for i, w := range want {
		got := steps[i]
		assert.Equal(t, w.kind, got.Kind, "step %d kind", i)
		assert.Equal(t, w.values, got.Values, "step %d values", i)
		assert.Equal(t, w.hl, got.Highlights, "step %d highlights", i)
		assert.Equal(t, w.desc, got.Description, "step %d description", i)
	}
}

func TestBubble_Trace(t *testing.T) {
	assertTrace(t, Bubble, []int{5, 3, 1}, []wantStep{
		{KindCompare, []int{5, 3, 1}, Highlights{C, C, U}, "Comparing elements at index 0 and 1"},
		{KindSwap, []int{3, 5, 1}, Highlights{W, W, U}, "Swapping 5 and 3"},
		{KindCompare, []int{3, 5, 1}, Highlights{U, C, C}, "Comparing elements at index 1 and 2"},
		{KindSwap, []int{3, 1, 5}, Highlights{U, W, W}, "Swapping 5 and 1"},
		{KindCompare, []int{3, 1, 5}, Highlights{C, C, S}, "Comparing elements at index 0 and 1"},
		{KindSwap, []int{1, 3, 5}, Highlights{W, W, S}, "Swapping 3 and 1"},
		{KindDone, []int{1, 3, 5}, Highlights{S, S, S}, "Sorting complete!"},
	})
}

func TestBubble_SortedInputHasNoSwaps(t *testing.T) {
	steps, err := Trace(Bubble, []int{1, 2, 3, 4})
	require.NoError(t, err)
	for _, s := range steps {
		assert.NotEqual(t, KindSwap, s.Kind)
	}
	// n(n-1)/2 comparisons plus the terminal step.
	assert.Len(t, steps, 7)
}

func TestInsertion_Trace(t *testing.T) {
	assertTrace(t, Insertion, []int{3, 1, 2}, []wantStep{
		{KindPick, []int{3, 1, 2}, Highlights{S, C, U}, "Picking element 1 to insert into sorted portion"},
		{KindShift, []int{1, 3, 2}, Highlights{W, W, U}, "Shifting 3 to the right"},
		{KindInsert, []int{1, 3, 2}, Highlights{S, S, U}, "Inserting 1 at position 0"},
		{KindPick, []int{1, 3, 2}, Highlights{S, S, C}, "Picking element 2 to insert into sorted portion"},
		{KindShift, []int{1, 2, 3}, Highlights{S, W, W}, "Shifting 3 to the right"},
		{KindInsert, []int{1, 2, 3}, Highlights{S, S, S}, "Inserting 2 at position 1"},
		{KindDone, []int{1, 2, 3}, Highlights{S, S, S}, "Sorting complete!"},
	})
}

func TestInsertion_ShiftMarksAccumulate(t *testing.T) {
	steps, err := Trace(Insertion, []int{2, 3, 1})
	require.NoError(t, err)
	// pick 3, insert 3, pick 1, shift 3, shift 2, insert 1, done
	require.Len(t, steps, 7)
	assert.Equal(t, Highlights{S, W, W}, steps[3].Highlights)
	assert.Equal(t, Highlights{W, W, W}, steps[4].Highlights)
	assert.Equal(t, []int{1, 2, 3}, steps[4].Values)
}

func TestMerge_Trace(t *testing.T) {
	assertTrace(t, Merge, []int{2, 1}, []wantStep{
		{KindDivide, []int{2, 1}, Highlights{U, U}, "Dividing array at index 0"},
		{KindCompare, []int{2, 1}, Highlights{C, C}, "Comparing 2 and 1"},
		{KindWrite, []int{1, 2}, Highlights{W, C}, "Writing 1 to index 0"},
		{KindWrite, []int{1, 2}, Highlights{W, W}, "Writing 2 to index 1"},
		{KindDone, []int{1, 2}, Highlights{S, S}, "Sorting complete!"},
	})
}

func TestMerge_StepCounts(t *testing.T) {
	input := []int{8, 7, 6, 5, 4, 3, 2, 1}
	steps, err := Trace(Merge, input)
	require.NoError(t, err)

	counts := map[Kind]int{}
	for _, s := range steps {
		counts[s.Kind]++
	}
	// n-1 divisions and n log2 n writes for n = 8.
	assert.Equal(t, 7, counts[KindDivide])
	assert.Equal(t, 24, counts[KindWrite])
	// Reverse input: every merge exhausts the right run after len(right) comparisons.
	assert.Equal(t, 12, counts[KindCompare])
	assert.Equal(t, 1, counts[KindDone])
}

func TestMerge_ComparesHighlightTwoHeads(t *testing.T) {
	steps, err := Trace(Merge, []int{40, 10, 30, 20, 50, 60})
	require.NoError(t, err)
	for _, s := range steps {
		if s.Kind != KindCompare {
			continue
		}
		assert.Equal(t, 2, s.Highlights.Count(Comparing), s.Description)
		assert.Equal(t, 0, s.Highlights.Count(Sorted), s.Description)
		assert.Equal(t, 0, s.Highlights.Count(Swapping), s.Description)
	}
}

func TestMerge_Stable(t *testing.T) {
	// Ties take the left run, so equal heads compare without reordering.
	steps, err := Trace(Merge, []int{5, 5})
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, "Writing 5 to index 0", steps[2].Description)
	assert.Equal(t, Highlights{W, C}, steps[2].Highlights)
}

func TestQuick_AllEqual(t *testing.T) {
	assertTrace(t, Quick, []int{2, 2, 2}, []wantStep{
		{KindPivot, []int{2, 2, 2}, Highlights{U, U, U}, "Choosing pivot: 2 at index 2"},
		{KindCompare, []int{2, 2, 2}, Highlights{C, U, C}, "Comparing 2 with pivot 2"},
		{KindCompare, []int{2, 2, 2}, Highlights{U, C, C}, "Comparing 2 with pivot 2"},
		{KindPlace, []int{2, 2, 2}, Highlights{W, C, W}, "Placing pivot 2 in correct position"},
		{KindPivot, []int{2, 2, 2}, Highlights{S, U, U}, "Choosing pivot: 2 at index 2"},
		{KindCompare, []int{2, 2, 2}, Highlights{S, C, C}, "Comparing 2 with pivot 2"},
		{KindPlace, []int{2, 2, 2}, Highlights{S, W, W}, "Placing pivot 2 in correct position"},
		{KindDone, []int{2, 2, 2}, Highlights{S, S, S}, "Sorting complete!"},
	})
}

func TestQuick_Trace(t *testing.T) {
	assertTrace(t, Quick, []int{3, 1, 2}, []wantStep{
		{KindPivot, []int{3, 1, 2}, Highlights{U, U, U}, "Choosing pivot: 2 at index 2"},
		{KindCompare, []int{3, 1, 2}, Highlights{C, U, C}, "Comparing 3 with pivot 2"},
		{KindCompare, []int{3, 1, 2}, Highlights{U, C, C}, "Comparing 1 with pivot 2"},
		{KindSwap, []int{1, 3, 2}, Highlights{W, W, C}, "Swapping 3 and 1"},
		{KindPlace, []int{1, 2, 3}, Highlights{W, W, W}, "Placing pivot 2 in correct position"},
		{KindDone, []int{1, 2, 3}, Highlights{S, S, S}, "Sorting complete!"},
	})
}

func TestQuick_LeftRangeFirst(t *testing.T) {
	steps, err := Trace(Quick, []int{4, 6, 1, 5, 3})
	require.NoError(t, err)
	var pivots []string
	for _, s := range steps {
		if s.Kind == KindPivot {
			pivots = append(pivots, s.Description)
		}
	}
	// Pivot 3 lands at index 1 leaving [1 3 4 5 6]; the left range [0,0] is
	// trivial, then [2,4] is partitioned around 6 and [2,3] around 5.
	require.Len(t, pivots, 3)
	assert.Equal(t, "Choosing pivot: 3 at index 4", pivots[0])
	assert.Equal(t, "Choosing pivot: 6 at index 4", pivots[1])
	assert.Equal(t, "Choosing pivot: 5 at index 3", pivots[2])
}
