// Package metrics accumulates per-run statistics from the step stream.
package metrics

import (
	"github.com/san-kum/sortviz/internal/sorting"
)

// Metric folds the steps of one run into a single number.
type Metric interface {
	Name() string
	Observe(step sorting.Step)
	Value() float64
	Reset()
}

// Counter counts the steps accepted by its filter.
type Counter struct {
	name  string
	match func(sorting.Step) bool
	n     int
}

func NewComparisons() *Counter {
	return &Counter{
		name:  "comparisons",
		match: func(s sorting.Step) bool { return s.Kind == sorting.KindCompare },
	}
}

// NewWrites counts steps that changed the array.
func NewWrites() *Counter {
	return &Counter{
		name:  "writes",
		match: func(s sorting.Step) bool { return s.Kind.Mutates() },
	}
}

func NewSteps() *Counter {
	return &Counter{
		name:  "steps",
		match: func(sorting.Step) bool { return true },
	}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(s sorting.Step) {
	if c.match(s) {
		c.n++
	}
}

func (c *Counter) Value() float64 { return float64(c.n) }
func (c *Counter) Reset()         { c.n = 0 }
