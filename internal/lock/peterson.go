package lock

import (
	"runtime"

	"go.uber.org/atomic"
)

// NumParticipants is the number of participants the algorithm supports.
// Peterson's algorithm is defined for exactly two contenders; this is a
// property of the algorithm, not a tunable.
const NumParticipants = 2

// Lock is the shared state of Peterson's algorithm for two participants
// identified by ids 0 and 1.
//
// A single Lock is constructed once and shared by reference between both
// participants. Either participant may write its own flag slot; both may
// read either slot and read/write turn. All cells are sequentially
// consistent: every load observes the most recent store in one global
// total order across both participants.
//
// Usage contract: the two users must call Enter/Exit with distinct ids
// (one uses 0, the other 1). Passing the same id from both goroutines
// voids the exclusion guarantee; this precondition is not checked at
// runtime.
type Lock struct {
	// flag[p] == true means participant p wants to enter the critical
	// section. Written only by p, read by both.
	flag [NumParticipants]atomic.Bool

	// turn records which participant most recently yielded priority to
	// the other. Always holds 0 or 1. Written by whichever participant
	// last executed its entry section.
	turn atomic.Int32

	// yield controls the runtime.Gosched() courtesy inside the spin
	// loop. It is a scheduling courtesy only; correctness never depends
	// on it. Immutable after construction.
	yield bool
}

// Options configures optional Lock behavior.
type Options struct {
	// DisableYield turns off the runtime.Gosched() call inside the
	// busy-wait loop. The spin then burns the processor until the wait
	// condition breaks. Exclusion holds either way; with GOMAXPROCS=1 a
	// non-yielding spin can stall the whole program for a scheduler
	// quantum, so yielding is the default.
	DisableYield bool
}

// New creates a Lock with default options: flags false, turn 0, yield
// courtesy enabled.
func New() *Lock {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Lock with the given options.
//
// The zero value of the shared cells is the required initial state
// (flag = {false, false}, turn = 0), so no further initialization is
// needed.
func NewWithOptions(opts Options) *Lock {
	return &Lock{yield: !opts.DisableYield}
}

// Enter executes the entry section for participant id and returns
// holding the critical section.
//
// The three steps run in order, each fully visible before the next:
//  1. flag[id] = true   (declare interest)
//  2. turn = other      (yield priority to the other participant)
//  3. spin while flag[other] && turn == other
//
// When Enter returns, either the other participant is not interested or
// turn == id. Both contenders racing through steps 1-2 leave turn
// holding exactly one of the two ids, so at most one of them can pass
// the wait condition; the loser spins until the winner exits. Enter
// cannot fail and cannot deadlock: the wait condition is a conjunction,
// and either conjunct going false releases the waiter.
//
// Enter does not block in the scheduler sense. The spin polls live
// values; see Options.DisableYield for the courtesy Gosched.
func (l *Lock) Enter(id int) {
	other := 1 - id

	l.flag[id].Store(true)
	l.turn.Store(int32(other))

	for l.flag[other].Load() && l.turn.Load() == int32(other) {
		if l.yield {
			runtime.Gosched()
		}
	}
}

// Exit executes the exit section for participant id: it clears the
// caller's interest flag, which releases the other participant's
// pending Enter (if any). Exit cannot fail.
func (l *Lock) Exit(id int) {
	l.flag[id].Store(false)
}

// Turn returns the current value of the turn cell. Always 0 or 1.
//
// Exposed for invariant-checking instrumentation; the protocol itself
// never needs it outside Enter.
func (l *Lock) Turn() int {
	return int(l.turn.Load())
}

// Interested reports whether participant id currently has its interest
// flag raised. Exposed for instrumentation and tests.
func (l *Lock) Interested(id int) bool {
	return l.flag[id].Load()
}
