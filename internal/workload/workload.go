package workload

import (
	"fmt"
	"time"

	"github.com/kolkov/petersonlock/internal/lock"
)

// Default workload parameters, matching the classic demonstration:
// 100000 attempted increments total, a 1µs race window in the
// unsynchronized variant.
const (
	DefaultIterations = 100000
	DefaultDelay      = time.Microsecond
)

// Options configures a workload run.
type Options struct {
	// Iterations is the total number of increments attempted across
	// both participants; each performs Iterations/2. Must be positive
	// and even so the exact-count verdict stays exact.
	Iterations int

	// Delay is slept between the read and the write-back of each
	// unsynchronized increment, widening the race window so lost
	// updates reproduce on fast hardware. Tunable; zero disables it.
	// Ignored by the protected run.
	Delay time.Duration

	// DisableYield is passed through to the lock (protected run only).
	DisableYield bool
}

// DefaultOptions returns the standard demonstration parameters.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Delay:      DefaultDelay,
	}
}

// Validate checks the options. Odd iteration totals are rejected rather
// than rounded: Iterations/2 per participant must sum back to exactly
// Iterations for the final comparison to be meaningful.
func (o Options) Validate() error {
	if o.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", o.Iterations)
	}
	if o.Iterations%2 != 0 {
		return fmt.Errorf("iterations must be even, got %d", o.Iterations)
	}
	if o.Delay < 0 {
		return fmt.Errorf("delay must be non-negative, got %v", o.Delay)
	}
	return nil
}

// Counter is the protected resource: a plain integer accumulator with
// no atomic access of its own. In the protected run it is serialized by
// the lock; in the unsynchronized run it is deliberately left bare.
type Counter struct {
	value int64
}

// Value returns the accumulated count. Only meaningful once all
// participants have been joined.
func (c *Counter) Value() int64 {
	return c.value
}

// increment performs the deliberately non-atomic three-step increment:
// read, add one, write back, with an optional sleep in the window
// between read and write.
func (c *Counter) increment(delay time.Duration) {
	tmp := c.value
	if delay > 0 {
		time.Sleep(delay)
	}
	tmp++
	c.value = tmp
}

// RunProtected runs the protected workload: two participants, ids 0 and
// 1, sharing one lock and one counter, each performing
// opts.Iterations/2 increments bracketed by Enter/Exit. Returns the
// final counter value, which must equal opts.Iterations; any other
// value indicates a defect in the lock implementation.
func RunProtected(opts Options) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("protected workload: %w", err)
	}

	l := lock.NewWithOptions(lock.Options{DisableYield: opts.DisableYield})
	var c Counter
	perParticipant := opts.Iterations / 2

	runPair(func(id int) {
		for i := 0; i < perParticipant; i++ {
			l.Enter(id)
			c.increment(0)
			l.Exit(id)
		}
	})

	return c.Value(), nil
}

// RunUnsynchronized runs the baseline workload: the same counter and
// iteration split, no bracketing, and opts.Delay slept inside each
// increment's read/write window. The result is non-deterministic; it
// never exceeds opts.Iterations, and with a non-zero delay it falls
// short on almost every run.
func RunUnsynchronized(opts Options) (int64, error) {
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("unsynchronized workload: %w", err)
	}

	var c Counter
	perParticipant := opts.Iterations / 2

	runPair(func(id int) {
		for i := 0; i < perParticipant; i++ {
			c.increment(opts.Delay)
		}
	})

	return c.Value(), nil
}
