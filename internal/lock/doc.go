// Package lock implements Peterson's mutual-exclusion algorithm for
// exactly two participants.
//
// The Lock owns the two shared cells the algorithm is built from:
//   - flag[2]: per-participant interest flags ("I want to enter")
//   - turn:    tie-breaker recording who most recently yielded priority
//
// Entry stores flag[self]=true, then turn=other, then spins while the
// other participant is interested AND it is the other's turn. Exit just
// clears flag[self]. No OS mutex, semaphore or park/unpark primitive is
// involved; exclusion comes entirely from the ordering of those loads
// and stores.
//
// Every access to flag and turn is sequentially consistent (Go's
// sync/atomic model, via go.uber.org/atomic). This is a requirement,
// not a choice: if the flag store could be reordered after the spin's
// loads, both participants could read stale "not interested" values and
// enter together. The protected resource itself needs no atomics - it
// is serialized by the protocol.
//
// The algorithm is hard-wired to two participants and does not
// generalize past two. N-process variants (filter, tournament, bakery)
// are different algorithms.
package lock
