// Package config holds the demo configuration: iteration count, race
// window and spin behavior, with flag and env-file overrides.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Recognized environment keys (set in the process environment or in a
// .env file).
const (
	// EnvIterations overrides the total attempted increments.
	EnvIterations = "PETERSON_ITERATIONS"
	// EnvDelayUS overrides the unsynchronized race window, in
	// microseconds.
	EnvDelayUS = "PETERSON_DELAY_US"
	// EnvYield enables/disables the spin-loop Gosched courtesy
	// ("true"/"false").
	EnvYield = "PETERSON_YIELD"
)

// Config is the resolved demo configuration.
type Config struct {
	// Iterations is the total number of increments attempted across
	// both participants. Must be positive and even.
	Iterations int

	// Delay is the injected race window of the unsynchronized baseline.
	Delay time.Duration

	// Trials is how many times a demo command repeats its workload.
	Trials int

	// Yield keeps the runtime.Gosched courtesy inside the busy-wait.
	Yield bool
}

// Default returns the standard demonstration configuration.
func Default() Config {
	return Config{
		Iterations: 100000,
		Delay:      time.Microsecond,
		Trials:     1,
		Yield:      true,
	}
}

// ValidationError describes a rejected configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface. Format: "config: field: message".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration. The even-iterations rule exists so
// that Iterations/2 per participant sums back to exactly Iterations and
// the exact-count verdict stays exact.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return &ValidationError{Field: "iterations", Message: fmt.Sprintf("must be positive, got %d", c.Iterations)}
	}
	if c.Iterations%2 != 0 {
		return &ValidationError{Field: "iterations", Message: fmt.Sprintf("must be even, got %d", c.Iterations)}
	}
	if c.Delay < 0 {
		return &ValidationError{Field: "delay", Message: fmt.Sprintf("must be non-negative, got %v", c.Delay)}
	}
	if c.Trials <= 0 {
		return &ValidationError{Field: "trials", Message: fmt.Sprintf("must be positive, got %d", c.Trials)}
	}
	return nil
}

// LoadEnvFile reads a .env file and applies the recognized keys on top
// of the receiver, returning the merged configuration. The result is
// not validated; callers validate after all override layers are
// applied.
func (c Config) LoadEnvFile(path string) (Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return c, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return c.applyEnvMap(env)
}

// applyEnvMap merges recognized keys from an environment map.
func (c Config) applyEnvMap(env map[string]string) (Config, error) {
	merged := c

	if raw, ok := env[EnvIterations]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c, fmt.Errorf("parsing %s=%q: %w", EnvIterations, raw, err)
		}
		merged.Iterations = n
	}
	if raw, ok := env[EnvDelayUS]; ok {
		us, err := strconv.Atoi(raw)
		if err != nil {
			return c, fmt.Errorf("parsing %s=%q: %w", EnvDelayUS, raw, err)
		}
		merged.Delay = time.Duration(us) * time.Microsecond
	}
	if raw, ok := env[EnvYield]; ok {
		yield, err := strconv.ParseBool(raw)
		if err != nil {
			return c, fmt.Errorf("parsing %s=%q: %w", EnvYield, raw, err)
		}
		merged.Yield = yield
	}

	return merged, nil
}
