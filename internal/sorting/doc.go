// Package sorting provides the step engine for sorting visualizations.
//
// Each algorithm is an explicit, resumable state machine that mutates an
// array in place and suspends after every externally meaningful event:
//
//   - [Step]: immutable snapshot of values, highlights and a description
//   - [Category]: highlight state of one index (unsorted, comparing, ...)
//   - [Stepper]: lazy, finite, non-restartable producer of steps
//   - [New]: binds one of the four algorithms to an array
//
// # Example
//
//	s, _ := sorting.New(sorting.Quick, []int{5, 3, 1})
//	for step, ok := s.Advance(); ok; step, ok = s.Advance() {
//		render(step)
//	}
//
// # Thread Safety
//
// Steppers are NOT thread-safe and own their array for the whole run.
// Steps are copies and may be shared freely.
package sorting
