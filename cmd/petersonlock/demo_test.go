package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kolkov/petersonlock/internal/config"
)

// TestParseDemoFlags covers the flag layer and its validation.
func TestParseDemoFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(config.Config) bool
		wantErr bool
	}{
		{
			name: "no flags keeps defaults",
			args: nil,
			want: func(c config.Config) bool {
				return c == config.Default()
			},
		},
		{
			name: "iterations and delay",
			args: []string{"-n", "2000", "-delay", "50us"},
			want: func(c config.Config) bool {
				return c.Iterations == 2000 && c.Delay == 50*time.Microsecond
			},
		},
		{
			name: "trials and no-yield",
			args: []string{"-trials", "10", "-no-yield"},
			want: func(c config.Config) bool {
				return c.Trials == 10 && !c.Yield
			},
		},
		{
			name:    "odd iterations rejected",
			args:    []string{"-n", "101"},
			wantErr: true,
		},
		{
			name:    "zero trials rejected",
			args:    []string{"-trials", "0"},
			wantErr: true,
		},
		{
			name:    "unknown flag rejected",
			args:    []string{"-bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDemoFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDemoFlags(%v) = %+v, want error", tt.args, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDemoFlags(%v): %v", tt.args, err)
			}
			if !tt.want(got) {
				t.Errorf("parseDemoFlags(%v) = %+v", tt.args, got)
			}
		})
	}
}

// TestParseDemoFlagsEnvFile checks layering: env file over defaults,
// explicit flags over the env file.
func TestParseDemoFlagsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := config.EnvIterations + "=4000\n" + config.EnvDelayUS + "=20\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	got, err := parseDemoFlags([]string{"-env", path, "-n", "6000"})
	if err != nil {
		t.Fatalf("parseDemoFlags: %v", err)
	}

	if got.Iterations != 6000 {
		t.Errorf("Iterations = %d, want 6000 (flag must win over env file)", got.Iterations)
	}
	if got.Delay != 20*time.Microsecond {
		t.Errorf("Delay = %v, want 20µs (from env file)", got.Delay)
	}
}

// TestRunProtectedCommand runs the protected demo end to end with a
// small workload; it must report success.
func TestRunProtectedCommand(t *testing.T) {
	cfg := config.Default()
	cfg.Iterations = 10000

	if !runProtected(cfg) {
		t.Fatal("runProtected reported a corrupt result")
	}
}
