package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Inversions tracks how far the array is from sorted: the number of index
// pairs i < j with values[i] > values[j] in the latest step.
type Inversions struct {
	current int
	history []float64
}

func NewInversions() *Inversions { return &Inversions{} }

func (m *Inversions) Name() string { return "inversions" }

func (m *Inversions) Observe(s sorting.Step) {
	m.current = Count(s.Values)
	m.history = append(m.history, float64(m.current))
}

func (m *Inversions) Value() float64 { return float64(m.current) }

// History returns the inversion count after every observed step.
func (m *Inversions) History() []float64 { return m.history }

func (m *Inversions) Reset() {
	m.current = 0
	m.history = m.history[:0]
}

// Count returns the number of inversions in values.
func Count(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}
