// Package report turns a workload result into a pass/fail verdict and
// renders it for the console.
//
// The two workload modes have different success criteria. A protected
// run must hit the attempted total exactly; anything else is an
// implementation defect. An unsynchronized run is expected to fall
// short - lost updates are the demonstration working as intended - and
// a full count there proves nothing beyond "no race observed this run".
package report

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Mode identifies which workload produced a result.
type Mode int

const (
	// ModeProtected is the Peterson-bracketed workload.
	ModeProtected Mode = iota
	// ModeUnsynchronized is the bare read-modify-write baseline.
	ModeUnsynchronized
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeProtected:
		return "protected"
	case ModeUnsynchronized:
		return "unsynchronized"
	default:
		return "unknown"
	}
}

// Outcome classifies a workload result.
type Outcome int

const (
	// OutcomeExact: protected run reached the attempted total. The
	// exclusion guarantee held.
	OutcomeExact Outcome = iota

	// OutcomeCorrupt: the final counter is impossible for the mode - a
	// protected run off by any amount, or any run exceeding the
	// attempted total. Indicates an implementation defect.
	OutcomeCorrupt

	// OutcomeLostUpdates: unsynchronized run fell short of the
	// attempted total. The expected demonstration result.
	OutcomeLostUpdates

	// OutcomeNoRaceObserved: unsynchronized run happened to reach the
	// full count. Non-deterministic; not evidence of correctness.
	OutcomeNoRaceObserved
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeExact:
		return "exact"
	case OutcomeCorrupt:
		return "corrupt"
	case OutcomeLostUpdates:
		return "lost-updates"
	case OutcomeNoRaceObserved:
		return "no-race-observed"
	default:
		return "unknown"
	}
}

// Verdict is the comparison of a workload's final counter against the
// attempted total.
type Verdict struct {
	Mode     Mode
	Expected int64
	Actual   int64
}

// Lost returns the number of lost updates (zero when the run reached
// the full count).
func (v Verdict) Lost() int64 {
	if v.Actual >= v.Expected {
		return 0
	}
	return v.Expected - v.Actual
}

// Outcome classifies the verdict per the mode's success criteria.
func (v Verdict) Outcome() Outcome {
	if v.Actual > v.Expected {
		return OutcomeCorrupt
	}
	switch v.Mode {
	case ModeProtected:
		if v.Actual == v.Expected {
			return OutcomeExact
		}
		return OutcomeCorrupt
	case ModeUnsynchronized:
		if v.Actual == v.Expected {
			return OutcomeNoRaceObserved
		}
		return OutcomeLostUpdates
	default:
		return OutcomeCorrupt
	}
}

// OK reports whether the result is acceptable for the mode. Lost
// updates in the unsynchronized run are acceptable (expected, even);
// only corruption is not.
func (v Verdict) OK() bool {
	return v.Outcome() != OutcomeCorrupt
}

// String renders the verdict as plain console text.
func (v Verdict) String() string {
	header := fmt.Sprintf("[%s] expected %d, got %d", v.Mode, v.Expected, v.Actual)

	switch v.Outcome() {
	case OutcomeExact:
		return header + ": mutual exclusion held, no lost updates"
	case OutcomeLostUpdates:
		return fmt.Sprintf("%s: race condition - lost %d updates", header, v.Lost())
	case OutcomeNoRaceObserved:
		return header + ": no race observed this run (non-deterministic, try again)"
	default:
		return header + ": CORRUPT result, implementation defect"
	}
}

// Log emits the verdict as a structured log line. Corrupt results log
// at error level, everything else at info.
func (v Verdict) Log(log *zerolog.Logger) {
	event := log.Info()
	if v.Outcome() == OutcomeCorrupt {
		event = log.Error()
	}
	event.
		Stringer("mode", v.Mode).
		Stringer("outcome", v.Outcome()).
		Int64("expected", v.Expected).
		Int64("actual", v.Actual).
		Int64("lost", v.Lost()).
		Msg("workload verdict")
}
