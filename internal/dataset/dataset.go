// Package dataset generates the input arrays sorted by a run.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

const (
	DefaultMin = 10
	DefaultMax = 100
)

var (
	// ErrUnknownPattern indicates a pattern name outside [Patterns].
	ErrUnknownPattern = errors.New("dataset: unknown pattern")

	// ErrInvalidRange indicates Min > Max.
	ErrInvalidRange = errors.New("dataset: invalid value range")
)

// Pattern selects the shape of a generated array.
type Pattern string

const (
	Random       Pattern = "random"
	Sorted       Pattern = "sorted"
	Reversed     Pattern = "reversed"
	NearlySorted Pattern = "nearly_sorted"
	FewUnique    Pattern = "few_unique"
)

// Patterns returns every supported pattern.
func Patterns() []Pattern {
	return []Pattern{Random, Sorted, Reversed, NearlySorted, FewUnique}
}

func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return Random, nil
	}
	p := Pattern(s)
	if !slices.Contains(Patterns(), p) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
	}
	return p, nil
}

// Generator draws element values uniformly from [Min, Max].
type Generator struct {
	rng      *rand.Rand
	Min, Max int
}

func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		Min: DefaultMin,
		Max: DefaultMax,
	}
}

// WithRange returns g with a different value range.
func (g *Generator) WithRange(lo, hi int) (*Generator, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrInvalidRange, lo, hi)
	}
	g.Min, g.Max = lo, hi
	return g, nil
}

// Generate returns n values shaped by p.
func (g *Generator) Generate(p Pattern, n int) ([]int, error) {
	if n < 0 {
		n = 0
	}
	switch p {
	case Random, "":
		return g.random(n), nil
	case Sorted:
		arr := g.random(n)
		slices.Sort(arr)
		return arr, nil
	case Reversed:
		arr := g.random(n)
		slices.Sort(arr)
		slices.Reverse(arr)
		return arr, nil
	case NearlySorted:
		arr := g.random(n)
		slices.Sort(arr)
		// one out-of-place pair per ten elements, at least one
		swaps := n / 10
		if swaps == 0 && n > 1 {
			swaps = 1
		}
		for k := 0; k < swaps; k++ {
			i := g.rng.Intn(n - 1)
			arr[i], arr[i+1] = arr[i+1], arr[i]
		}
		return arr, nil
	case FewUnique:
		pool := g.random(4)
		arr := make([]int, n)
		for i := range arr {
			arr[i] = pool[g.rng.Intn(len(pool))]
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, string(p))
}

func (g *Generator) random(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = g.Min + g.rng.Intn(g.Max-g.Min+1)
	}
	return arr
}
