// Package driver advances the active sorting run one step per tick.
//
// A Driver owns at most one run at a time. While a run is active every
// reconfiguration request (algorithm, size, pattern, new array) is rejected
// with [ErrRunActive]; the tick interval can change at any time.
//
// Driver instances are NOT thread-safe. Call them from a single goroutine,
// e.g. the bubbletea update loop.
package driver

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	MinSize     = 8
	MaxSize     = 50
	DefaultSize = 25

	MinInterval     = 10 * time.Millisecond
	MaxInterval     = 500 * time.Millisecond
	DefaultInterval = 100 * time.Millisecond
)

var (
	// ErrRunActive rejects a request that needs the driver to be idle.
	ErrRunActive = errors.New("driver: run in progress")

	// ErrInvalidSize indicates an array size outside [MinSize, MaxSize].
	ErrInvalidSize = errors.New("driver: array size out of range")
)

// Status tells the caller what a tick produced.
type Status int

const (
	StatusIdle Status = iota
	StatusStep
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusStep:
		return "step"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// EndReason says why a run ended.
type EndReason string

const (
	Completed EndReason = "completed"
	Stopped   EndReason = "stopped"
)

// Observer receives every step the driver produces.
type Observer interface {
	OnStep(alg sorting.Algorithm, step sorting.Step)
}

// RunObserver is implemented by observers that also track run boundaries.
type RunObserver interface {
	OnRunStart(alg sorting.Algorithm, values []int)
	OnRunEnd(alg sorting.Algorithm, reason EndReason)
}

type Options struct {
	Algorithm sorting.Algorithm
	Size      int
	Interval  time.Duration
	Pattern   dataset.Pattern
	Generator *dataset.Generator
	Logger    *slog.Logger
}

type Driver struct {
	logger    *slog.Logger
	gen       *dataset.Generator
	alg       sorting.Algorithm
	pattern   dataset.Pattern
	size      int
	interval  time.Duration
	staged    []int
	observers []Observer

	stepper  sorting.Stepper
	runAlg   sorting.Algorithm
	complete bool
	last     sorting.Step
	hasLast  bool
}

// New creates an idle driver with a freshly generated staged array.
func New(opts Options) (*Driver, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = sorting.Bubble
	}
	if _, err := sorting.Info(opts.Algorithm); err != nil {
		return nil, err
	}
	if opts.Size == 0 {
		opts.Size = DefaultSize
	}
	if opts.Size < MinSize || opts.Size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, opts.Size)
	}
	if opts.Interval == 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Pattern == "" {
		opts.Pattern = dataset.Random
	}
	if opts.Generator == nil {
		opts.Generator = dataset.New(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	d := &Driver{
		logger:   opts.Logger,
		gen:      opts.Generator,
		alg:      opts.Algorithm,
		pattern:  opts.Pattern,
		size:     opts.Size,
		interval: clampInterval(opts.Interval),
	}
	staged, err := d.gen.Generate(d.pattern, d.size)
	if err != nil {
		return nil, err
	}
	d.staged = staged
	return d, nil
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Active reports whether a run is in progress. A run that has produced its
// terminal step is complete and no longer blocks reconfiguration.
func (d *Driver) Active() bool { return d.stepper != nil && !d.complete }

// Start begins a run of the configured algorithm over the staged array.
func (d *Driver) Start() error {
	return d.StartRun(d.alg, d.staged)
}

// StartRun begins a run of alg over a copy of values.
func (d *Driver) StartRun(alg sorting.Algorithm, values []int) error {
	if d.Active() {
		d.reject("start")
		return ErrRunActive
	}
	arr := slices.Clone(values)
	st, err := sorting.New(alg, arr)
	if err != nil {
		return err
	}

	d.stepper = st
	d.runAlg = alg
	d.complete = false
	d.hasLast = false

	for _, o := range d.observers {
		if ro, ok := o.(RunObserver); ok {
			ro.OnRunStart(alg, slices.Clone(values))
		}
	}
	d.logger.Info("run started",
		slog.String("algorithm", string(alg)),
		slog.Int("size", len(values)),
	)
	return nil
}

// Tick pulls the next step of the active run. After the terminal step the
// next tick reports StatusExhausted and the driver goes idle.
func (d *Driver) Tick() (sorting.Step, Status) {
	if d.stepper == nil {
		return sorting.Step{}, StatusIdle
	}

	step, ok := d.stepper.Advance()
	if !ok {
		d.stepper = nil
		d.complete = false
		return sorting.Step{}, StatusExhausted
	}

	d.last, d.hasLast = step, true
	for _, o := range d.observers {
		o.OnStep(d.runAlg, step)
	}

	if step.Terminal {
		d.complete = true
		d.logger.Info("run complete",
			slog.String("algorithm", string(d.runAlg)),
			slog.Int("steps", step.Seq+1),
		)
		d.notifyEnd(Completed)
	}
	return step, StatusStep
}

// StopRun discards the active run. It is always accepted.
func (d *Driver) StopRun() {
	if d.Active() {
		d.logger.Info("run stopped",
			slog.String("algorithm", string(d.runAlg)),
			slog.Int("steps", d.last.Seq+1),
		)
		d.notifyEnd(Stopped)
	}
	d.stepper = nil
	d.complete = false
}

// RegenerateArray stages a new array of the given size.
func (d *Driver) RegenerateArray(size int) ([]int, error) {
	if d.Active() {
		d.reject("regenerate")
		return nil, ErrRunActive
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	arr, err := d.gen.Generate(d.pattern, size)
	if err != nil {
		return nil, err
	}
	d.size = size
	d.staged = arr
	d.stepper = nil
	d.complete = false
	d.hasLast = false
	d.logger.Debug("array regenerated",
		slog.Int("size", size),
		slog.String("pattern", string(d.pattern)),
	)
	return slices.Clone(arr), nil
}

// Regenerate stages a new array of the current size.
func (d *Driver) Regenerate() ([]int, error) {
	return d.RegenerateArray(d.size)
}

// SetAlgorithm selects the algorithm for the next run and stages a new array.
func (d *Driver) SetAlgorithm(alg sorting.Algorithm) error {
	if d.Active() {
		d.reject("set algorithm")
		return ErrRunActive
	}
	if _, err := sorting.Info(alg); err != nil {
		return err
	}
	d.alg = alg
	_, err := d.Regenerate()
	return err
}

// SetPattern selects the input shape and stages a new array.
func (d *Driver) SetPattern(p dataset.Pattern) error {
	if d.Active() {
		d.reject("set pattern")
		return ErrRunActive
	}
	prev := d.pattern
	d.pattern = p
	if _, err := d.Regenerate(); err != nil {
		d.pattern = prev
		return err
	}
	return nil
}

// SetInterval changes the tick interval, clamped to [MinInterval, MaxInterval].
// It takes effect on the next tick, mid-run included.
func (d *Driver) SetInterval(iv time.Duration) {
	d.interval = clampInterval(iv)
}

func (d *Driver) Interval() time.Duration         { return d.interval }
func (d *Driver) Algorithm() sorting.Algorithm    { return d.alg }
func (d *Driver) Pattern() dataset.Pattern        { return d.pattern }
func (d *Driver) Size() int                       { return d.size }
func (d *Driver) Array() []int                    { return slices.Clone(d.staged) }
func (d *Driver) Last() (sorting.Step, bool)      { return d.last, d.hasLast }
func (d *Driver) RunAlgorithm() sorting.Algorithm { return d.runAlg }

func (d *Driver) notifyEnd(reason EndReason) {
	for _, o := range d.observers {
		if ro, ok := o.(RunObserver); ok {
			ro.OnRunEnd(d.runAlg, reason)
		}
	}
}

func (d *Driver) reject(request string) {
	d.logger.Debug("request rejected",
		slog.String("request", request),
		slog.String("reason", ErrRunActive.Error()),
	)
}

func clampInterval(iv time.Duration) time.Duration {
	return min(max(iv, MinInterval), MaxInterval)
}
