// Package peterson provides a software mutual-exclusion lock for
// exactly two goroutines, implementing Peterson's algorithm.
//
// The lock uses no OS mutex, semaphore or channel. Exclusion is built
// from two shared interest flags and a shared turn cell, all accessed
// with sequentially consistent atomics:
//
//	m := peterson.New()
//
//	// goroutine A            // goroutine B
//	m.Lock(0)                 m.Lock(1)
//	// critical section       // critical section
//	m.Unlock(0)               m.Unlock(1)
//
// # Why it works
//
// Lock(id) raises flag[id], then stores turn = other, then spins while
// flag[other] && turn == other. To be inside the critical section a
// participant must have observed either "other not interested" or
// "turn == me". When both contend, each overwrites turn with the
// other's id, so turn ends up holding exactly one value: whichever
// participant wrote turn last sees turn == other and spins, while the
// first writer proceeds. At most one can satisfy its wait-exit
// condition at a time, so at most one is ever inside the critical
// section.
//
// Progress holds because the spin condition is a conjunction: the
// winner eventually calls Unlock (clearing its flag, falsifying the
// first conjunct), and a fresh contender immediately hands over the
// turn (falsifying the second). Neither participant can spin forever.
//
// Both properties depend on sequential consistency. With weaker
// ordering, the spin could evaluate its condition against stale flag
// or turn values and both participants could enter together. That is
// exactly the failure mode of an unguarded read-modify-write, which
// this module's workload package reproduces as a contrast baseline.
//
// # Usage contract
//
// The lock serves exactly two participants, identified by ids 0 and 1.
// The two users must claim distinct ids; this precondition is not
// checked at runtime. The algorithm does not generalize to more than
// two contenders - N-process variants (filter, tournament, bakery) are
// different algorithms.
//
// Lock spins rather than blocking in the scheduler. By default it
// calls runtime.Gosched in the spin body as a courtesy; see
// Options.DisableYield. Correctness does not depend on yielding.
package peterson
