package sorting

import (
	"fmt"
	"strings"
)

// AlgorithmInfo is the reference card shown next to a run.
type AlgorithmInfo struct {
	Name        string
	Time        string
	Space       string
	Best        string
	Stable      bool
	Description string
	HowItWorks  []string
}

var catalog = map[Algorithm]AlgorithmInfo{
	Bubble: {
		Name:   "Bubble Sort",
		Time:   "O(n²)",
		Space:  "O(1)",
		Best:   "O(n)",
		Stable: true,
		Description: "Bubble Sort is the simplest sorting algorithm. It works by repeatedly " +
			"stepping through the list, comparing adjacent elements and swapping them " +
			"if they are in the wrong order. The pass through the list is repeated " +
			"until no swaps are needed, which indicates that the list is sorted.",
		HowItWorks: []string{
			"Compare adjacent elements from left to right",
			"If the left element is greater, swap them",
			"Move to the next pair and repeat",
			`After each pass, largest element "bubbles up"`,
			"Repeat until no swaps are needed",
		},
	},
	Insertion: {
		Name:   "Insertion Sort",
		Time:   "O(n²)",
		Space:  "O(1)",
		Best:   "O(n)",
		Stable: true,
		Description: "Insertion Sort builds the final sorted array one item at a time. " +
			"It is much like sorting playing cards in your hands - you pick up one " +
			"card at a time and insert it into its correct position among the " +
			"already-sorted cards.",
		HowItWorks: []string{
			"Start from second element (first is sorted)",
			"Compare current with sorted portion",
			"Shift larger elements one position right",
			"Insert current element in correct position",
			"Move to next element and repeat",
		},
	},
	Merge: {
		Name:   "Merge Sort",
		Time:   "O(n log n)",
		Space:  "O(n)",
		Best:   "O(n log n)",
		Stable: true,
		Description: "Merge Sort is a divide-and-conquer algorithm. It divides the input " +
			"array into two halves, recursively sorts them, and then merges the two " +
			"sorted halves. It guarantees O(n log n) time complexity in all cases, " +
			"making it efficient for large datasets.",
		HowItWorks: []string{
			"Divide the array into two halves",
			"Recursively sort each half",
			"Merge two sorted halves by comparing",
			"Place the smaller element first",
			"Continue until all elements are merged",
		},
	},
	Quick: {
		Name:   "Quick Sort",
		Time:   "O(n log n)",
		Space:  "O(log n)",
		Best:   "O(n log n)",
		Stable: false,
		Description: "Quick Sort is a highly efficient divide-and-conquer algorithm. " +
			`It works by selecting a "pivot" element and partitioning the array so ` +
			"that elements smaller than the pivot go to the left and larger elements " +
			"go to the right. This process is recursively applied to the sub-arrays.",
		HowItWorks: []string{
			"Choose a pivot element (usually last)",
			"Partition: smaller left, larger right",
			"Pivot is now in final sorted position",
			"Recursively apply to sub-arrays",
			"Base case: size 0 or 1 already sorted",
		},
	},
}

// Algorithms returns every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion, Merge, Quick}
}

// Info returns the reference card for alg.
func Info(alg Algorithm) (AlgorithmInfo, error) {
	info, ok := catalog[alg]
	if !ok {
		return AlgorithmInfo{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	return info, nil
}

// Name returns the display name of alg, or the raw id if it is unknown.
func (a Algorithm) Name() string {
	if info, ok := catalog[a]; ok {
		return info.Name
	}
	return string(a)
}

// ParseAlgorithm accepts an id ("quick") or a display name ("Quick Sort"),
// case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimSuffix(key, " sort")
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimSpace(key)
	if _, ok := catalog[Algorithm(key)]; ok {
		return Algorithm(key), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Next returns the algorithm after a in menu order, wrapping around.
func (a Algorithm) Next() Algorithm {
	algs := Algorithms()
	for i, x := range algs {
		if x == a {
			return algs[(i+1)%len(algs)]
		}
	}
	return algs[0]
}
