package driver_test

import (
	"io"
	"log/slog"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

type recorder struct {
	steps  []sorting.Step
	starts [][]int
	ends   []driver.EndReason
}

func (r *recorder) OnStep(_ sorting.Algorithm, s sorting.Step) { r.steps = append(r.steps, s) }
func (r *recorder) OnRunStart(_ sorting.Algorithm, v []int)    { r.starts = append(r.starts, v) }
func (r *recorder) OnRunEnd(_ sorting.Algorithm, reason driver.EndReason) {
	r.ends = append(r.ends, reason)
}

// stepsOnly does not implement RunObserver.
type stepsOnly struct{ n int }

func (s *stepsOnly) OnStep(sorting.Algorithm, sorting.Step) { s.n++ }

func newDriver(alg sorting.Algorithm) *driver.Driver {
	d, err := driver.New(driver.Options{
		Algorithm: alg,
		Size:      10,
		Generator: dataset.New(11),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	Expect(err).NotTo(HaveOccurred())
	return d
}

func drain(d *driver.Driver) []sorting.Step {
	var steps []sorting.Step
	for {
		s, st := d.Tick()
		if st != driver.StatusStep {
			return steps
		}
		steps = append(steps, s)
	}
}

var _ = Describe("Driver", func() {
	var (
		d   *driver.Driver
		rec *recorder
	)

	BeforeEach(func() {
		d = newDriver(sorting.Bubble)
		rec = &recorder{}
		d.AddObserver(rec)
	})

	Describe("New", func() {
		It("applies defaults", func() {
			d, err := driver.New(driver.Options{Generator: dataset.New(1)})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Algorithm()).To(Equal(sorting.Bubble))
			Expect(d.Size()).To(Equal(driver.DefaultSize))
			Expect(d.Interval()).To(Equal(driver.DefaultInterval))
			Expect(d.Pattern()).To(Equal(dataset.Random))
			Expect(d.Array()).To(HaveLen(driver.DefaultSize))
			Expect(d.Active()).To(BeFalse())
		})

		It("rejects bad options", func() {
			_, err := driver.New(driver.Options{Algorithm: "bogo"})
			Expect(err).To(MatchError(sorting.ErrUnknownAlgorithm))

			_, err = driver.New(driver.Options{Size: 51})
			Expect(err).To(MatchError(driver.ErrInvalidSize))

			_, err = driver.New(driver.Options{Size: 8, Pattern: "spiral"})
			Expect(err).To(MatchError(dataset.ErrUnknownPattern))
		})
	})

	Describe("Tick", func() {
		It("is idle without a run", func() {
			_, st := d.Tick()
			Expect(st).To(Equal(driver.StatusIdle))
		})

		It("yields every step, then exhausted, then idle", func() {
			input := d.Array()
			Expect(d.Start()).To(Succeed())
			Expect(d.Active()).To(BeTrue())

			steps := drain(d)
			Expect(steps).NotTo(BeEmpty())
			last := steps[len(steps)-1]
			Expect(last.Terminal).To(BeTrue())
			Expect(slices.IsSorted(last.Values)).To(BeTrue())

			want, err := sorting.Trace(sorting.Bubble, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(steps).To(Equal(want))

			_, st := d.Tick()
			Expect(st).To(Equal(driver.StatusIdle))
		})

		It("reports exhausted exactly once after the terminal step", func() {
			Expect(d.StartRun(sorting.Quick, []int{1})).To(Succeed())

			s, st := d.Tick()
			Expect(st).To(Equal(driver.StatusStep))
			Expect(s.Terminal).To(BeTrue())
			Expect(d.Active()).To(BeFalse())

			_, st = d.Tick()
			Expect(st).To(Equal(driver.StatusExhausted))
			_, st = d.Tick()
			Expect(st).To(Equal(driver.StatusIdle))
		})

		It("notifies observers", func() {
			plain := &stepsOnly{}
			d.AddObserver(plain)

			Expect(d.Start()).To(Succeed())
			steps := drain(d)

			Expect(rec.steps).To(Equal(steps))
			Expect(plain.n).To(Equal(len(steps)))
			Expect(rec.starts).To(HaveLen(1))
			Expect(rec.ends).To(Equal([]driver.EndReason{driver.Completed}))
		})
	})

	Describe("StartRun", func() {
		It("copies the input", func() {
			input := []int{5, 4, 3, 2, 1, 9, 8, 7}
			orig := slices.Clone(input)
			Expect(d.StartRun(sorting.Merge, input)).To(Succeed())
			drain(d)
			Expect(input).To(Equal(orig))
		})

		It("rejects a second start and leaves the first run untouched", func() {
			Expect(d.StartRun(sorting.Insertion, []int{3, 1, 2})).To(Succeed())
			first, _ := d.Tick()

			err := d.StartRun(sorting.Bubble, []int{9, 9, 9, 9})
			Expect(err).To(MatchError(driver.ErrRunActive))

			next, st := d.Tick()
			Expect(st).To(Equal(driver.StatusStep))
			Expect(next.Seq).To(Equal(first.Seq + 1))
			Expect(d.RunAlgorithm()).To(Equal(sorting.Insertion))

			steps := drain(d)
			Expect(steps[len(steps)-1].Values).To(Equal([]int{1, 2, 3}))
		})

		It("can start again once the run completed", func() {
			Expect(d.StartRun(sorting.Quick, []int{2, 1})).To(Succeed())
			drain(d)
			Expect(d.StartRun(sorting.Quick, []int{3, 2, 1})).To(Succeed())
			steps := drain(d)
			Expect(steps[len(steps)-1].Values).To(Equal([]int{1, 2, 3}))
		})

		It("rejects an unknown algorithm", func() {
			Expect(d.StartRun("bogo", []int{1})).To(MatchError(sorting.ErrUnknownAlgorithm))
			Expect(d.Active()).To(BeFalse())
		})
	})

	Describe("StopRun", func() {
		It("discards the active run", func() {
			Expect(d.Start()).To(Succeed())
			d.Tick()
			d.StopRun()

			Expect(d.Active()).To(BeFalse())
			_, st := d.Tick()
			Expect(st).To(Equal(driver.StatusIdle))
			Expect(rec.ends).To(Equal([]driver.EndReason{driver.Stopped}))
		})

		It("is a no-op when idle", func() {
			d.StopRun()
			Expect(rec.ends).To(BeEmpty())
		})
	})

	Describe("reconfiguration", func() {
		BeforeEach(func() {
			Expect(d.Start()).To(Succeed())
			d.Tick()
		})

		It("is rejected while a run is active", func() {
			staged := d.Array()

			_, err := d.RegenerateArray(20)
			Expect(err).To(MatchError(driver.ErrRunActive))
			Expect(d.SetAlgorithm(sorting.Merge)).To(MatchError(driver.ErrRunActive))
			Expect(d.SetPattern(dataset.Sorted)).To(MatchError(driver.ErrRunActive))

			Expect(d.Algorithm()).To(Equal(sorting.Bubble))
			Expect(d.Pattern()).To(Equal(dataset.Random))
			Expect(d.Array()).To(Equal(staged))
			Expect(d.Active()).To(BeTrue())
		})

		It("is accepted after the run is stopped", func() {
			d.StopRun()

			arr, err := d.RegenerateArray(20)
			Expect(err).NotTo(HaveOccurred())
			Expect(arr).To(HaveLen(20))
			Expect(d.Size()).To(Equal(20))

			Expect(d.SetAlgorithm(sorting.Merge)).To(Succeed())
			Expect(d.Algorithm()).To(Equal(sorting.Merge))

			Expect(d.SetPattern(dataset.Reversed)).To(Succeed())
			rev := d.Array()
			slices.Reverse(rev)
			Expect(slices.IsSorted(rev)).To(BeTrue())
		})

		It("is accepted once the terminal step was delivered", func() {
			drain(d)
			_, err := d.RegenerateArray(12)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("RegenerateArray", func() {
		DescribeTable("size bounds",
			func(size int, ok bool) {
				_, err := d.RegenerateArray(size)
				if ok {
					Expect(err).NotTo(HaveOccurred())
					Expect(d.Size()).To(Equal(size))
				} else {
					Expect(err).To(MatchError(driver.ErrInvalidSize))
					Expect(d.Size()).To(Equal(10))
				}
			},
			Entry("below minimum", 7, false),
			Entry("minimum", 8, true),
			Entry("maximum", 50, true),
			Entry("above maximum", 51, false),
		)

		It("keeps the pattern on unknown-pattern errors", func() {
			Expect(d.SetPattern("spiral")).To(MatchError(dataset.ErrUnknownPattern))
			Expect(d.Pattern()).To(Equal(dataset.Random))
		})
	})

	Describe("SetInterval", func() {
		It("clamps to the supported range", func() {
			d.SetInterval(time.Millisecond)
			Expect(d.Interval()).To(Equal(driver.MinInterval))
			d.SetInterval(time.Second)
			Expect(d.Interval()).To(Equal(driver.MaxInterval))
			d.SetInterval(250 * time.Millisecond)
			Expect(d.Interval()).To(Equal(250 * time.Millisecond))
		})

		It("is accepted mid-run", func() {
			Expect(d.Start()).To(Succeed())
			d.SetInterval(20 * time.Millisecond)
			Expect(d.Interval()).To(Equal(20 * time.Millisecond))
			Expect(d.Active()).To(BeTrue())
		})
	})
})

var _ = Describe("Status", func() {
	It("has readable names", func() {
		Expect(driver.StatusIdle.String()).To(Equal("idle"))
		Expect(driver.StatusStep.String()).To(Equal("step"))
		Expect(driver.StatusExhausted.String()).To(Equal("exhausted"))
		Expect(driver.Status(7).String()).To(Equal("unknown"))
	})
})
