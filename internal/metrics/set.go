package metrics

import (
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Set feeds every step to its metrics. It is a driver observer and resets
// itself when a run starts.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

// Default returns steps, comparisons, writes and inversions.
func Default() *Set {
	return NewSet(NewSteps(), NewComparisons(), NewWrites(), NewInversions())
}

func (s *Set) Add(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Set) Observe(step sorting.Step) {
	for _, m := range s.metrics {
		m.Observe(step)
	}
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}

func (s *Set) OnStep(_ sorting.Algorithm, step sorting.Step) { s.Observe(step) }

func (s *Set) OnRunStart(sorting.Algorithm, []int)          { s.Reset() }
func (s *Set) OnRunEnd(sorting.Algorithm, driver.EndReason) {}

// Get returns the metric registered under name.
func (s *Set) Get(name string) (Metric, bool) {
	for _, m := range s.metrics {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns metric names in registration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.metrics))
	for i, m := range s.metrics {
		names[i] = m.Name()
	}
	return names
}

// Collect folds a finished trace through a fresh default set.
func Collect(steps []sorting.Step) *Set {
	s := Default()
	for _, st := range steps {
		s.Observe(st)
	}
	return s
}
