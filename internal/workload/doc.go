// Package workload runs the shared-counter workloads that demonstrate
// Peterson's algorithm empirically.
//
// Two variants operate on the same plain (non-atomic) counter:
//
//   - RunProtected brackets every increment with the lock's entry/exit
//     sections; the final count must equal the attempted total exactly.
//   - RunUnsynchronized performs the same read-modify-write with no
//     bracketing and an injected delay between read and write-back.
//     It is the deliberate negative exemplar: lost updates are the
//     expected outcome, not a defect to fix.
//
// The increment is written as three separate steps (read, add, write)
// in both variants so that correctness visibly comes from the
// bracketing protocol, not from the increment being a single primitive
// operation.
package workload
