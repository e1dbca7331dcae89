package report

import (
	"strings"
	"testing"
)

// TestVerdictOutcome covers the classification matrix for both modes.
func TestVerdictOutcome(t *testing.T) {
	tests := []struct {
		name        string
		verdict     Verdict
		wantOutcome Outcome
		wantLost    int64
		wantOK      bool
	}{
		{
			name:        "protected exact",
			verdict:     Verdict{Mode: ModeProtected, Expected: 100000, Actual: 100000},
			wantOutcome: OutcomeExact,
			wantLost:    0,
			wantOK:      true,
		},
		{
			name:        "protected shortfall is a defect",
			verdict:     Verdict{Mode: ModeProtected, Expected: 100000, Actual: 99973},
			wantOutcome: OutcomeCorrupt,
			wantLost:    27,
			wantOK:      false,
		},
		{
			name:        "protected overshoot is a defect",
			verdict:     Verdict{Mode: ModeProtected, Expected: 100000, Actual: 100001},
			wantOutcome: OutcomeCorrupt,
			wantLost:    0,
			wantOK:      false,
		},
		{
			name:        "unsynchronized lost updates",
			verdict:     Verdict{Mode: ModeUnsynchronized, Expected: 100000, Actual: 51234},
			wantOutcome: OutcomeLostUpdates,
			wantLost:    48766,
			wantOK:      true,
		},
		{
			name:        "unsynchronized full count",
			verdict:     Verdict{Mode: ModeUnsynchronized, Expected: 100000, Actual: 100000},
			wantOutcome: OutcomeNoRaceObserved,
			wantLost:    0,
			wantOK:      true,
		},
		{
			name:        "unsynchronized overshoot is a defect",
			verdict:     Verdict{Mode: ModeUnsynchronized, Expected: 100000, Actual: 100002},
			wantOutcome: OutcomeCorrupt,
			wantLost:    0,
			wantOK:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.verdict.Outcome(); got != tt.wantOutcome {
				t.Errorf("Outcome() = %v, want %v", got, tt.wantOutcome)
			}
			if got := tt.verdict.Lost(); got != tt.wantLost {
				t.Errorf("Lost() = %d, want %d", got, tt.wantLost)
			}
			if got := tt.verdict.OK(); got != tt.wantOK {
				t.Errorf("OK() = %v, want %v", got, tt.wantOK)
			}
		})
	}
}

// TestVerdictString spot-checks the console rendering for each outcome.
func TestVerdictString(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    []string
	}{
		{
			name:    "exact",
			verdict: Verdict{Mode: ModeProtected, Expected: 100, Actual: 100},
			want:    []string{"protected", "mutual exclusion held"},
		},
		{
			name:    "lost updates includes count",
			verdict: Verdict{Mode: ModeUnsynchronized, Expected: 100, Actual: 60},
			want:    []string{"unsynchronized", "lost 40 updates"},
		},
		{
			name:    "no race observed",
			verdict: Verdict{Mode: ModeUnsynchronized, Expected: 100, Actual: 100},
			want:    []string{"no race observed", "non-deterministic"},
		},
		{
			name:    "corrupt",
			verdict: Verdict{Mode: ModeProtected, Expected: 100, Actual: 99},
			want:    []string{"CORRUPT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.verdict.String()
			for _, substr := range tt.want {
				if !strings.Contains(got, substr) {
					t.Errorf("String() = %q, want substring %q", got, substr)
				}
			}
		})
	}
}

// TestModeString pins the mode names used in log output.
func TestModeString(t *testing.T) {
	if got := ModeProtected.String(); got != "protected" {
		t.Errorf("ModeProtected.String() = %q", got)
	}
	if got := ModeUnsynchronized.String(); got != "unsynchronized" {
		t.Errorf("ModeUnsynchronized.String() = %q", got)
	}
	if got := Mode(42).String(); got != "unknown" {
		t.Errorf("Mode(42).String() = %q", got)
	}
}
