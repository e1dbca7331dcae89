package peterson

import internal "github.com/kolkov/petersonlock/internal/lock"

// NumParticipants is the number of goroutines one Mutex can serve.
// Fixed at two by the algorithm itself.
const NumParticipants = internal.NumParticipants

// Mutex is a two-participant Peterson lock.
//
// A Mutex must be created with New or NewWithOptions and shared by
// reference between its two users; it must not be copied after first
// use.
type Mutex struct {
	l *internal.Lock
}

// Options configures optional Mutex behavior.
type Options struct {
	// DisableYield turns off the runtime.Gosched courtesy inside the
	// busy-wait loop. Exclusion holds either way.
	DisableYield bool
}

// New creates a Mutex with default options.
func New() *Mutex {
	return &Mutex{l: internal.New()}
}

// NewWithOptions creates a Mutex with the given options.
func NewWithOptions(opts Options) *Mutex {
	return &Mutex{l: internal.NewWithOptions(internal.Options{
		DisableYield: opts.DisableYield,
	})}
}

// Lock acquires the critical section for participant id (0 or 1),
// spinning until the other participant is not interested or has ceded
// the turn. It cannot fail; it can only delay.
//
// The caller must use the same id for the matching Unlock, and the two
// users of the Mutex must hold distinct ids.
func (m *Mutex) Lock(id int) {
	m.l.Enter(id)
}

// Unlock releases the critical section for participant id, allowing a
// pending Lock by the other participant to proceed.
func (m *Mutex) Unlock(id int) {
	m.l.Exit(id)
}

// Turn returns the current turn value (0 or 1). Intended for
// instrumentation and invariant checks, not for protocol decisions.
func (m *Mutex) Turn() int {
	return m.l.Turn()
}

// Interested reports whether participant id currently has its interest
// flag raised. Intended for instrumentation.
func (m *Mutex) Interested(id int) bool {
	return m.l.Interested(id)
}
