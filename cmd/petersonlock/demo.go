// demo.go implements the 'protected', 'unprotected' and 'both'
// commands.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kolkov/petersonlock/internal/config"
	"github.com/kolkov/petersonlock/internal/logger"
	"github.com/kolkov/petersonlock/internal/report"
	"github.com/kolkov/petersonlock/internal/workload"
)

// demoCommand parses flags into a config, runs the given demo and
// returns the process exit code: 0 when every verdict is acceptable
// for its mode, 1 on a corrupt result or a usage error.
func demoCommand(args []string, run func(config.Config) bool) int {
	cfg, err := parseDemoFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if run(cfg) {
		return 0
	}
	return 1
}

// parseDemoFlags resolves the configuration layers in order: defaults,
// optional .env file, then command-line flags.
func parseDemoFlags(args []string) (config.Config, error) {
	cfg := config.Default()

	fs := flag.NewFlagSet("petersonlock", flag.ContinueOnError)
	iterations := fs.Int("n", cfg.Iterations, "total increments attempted (must be even)")
	delay := fs.Duration("delay", cfg.Delay, "race window inside each unsynchronized increment")
	trials := fs.Int("trials", cfg.Trials, "number of workload repetitions")
	noYield := fs.Bool("no-yield", false, "spin without the runtime.Gosched courtesy")
	envFile := fs.String("env", "", "path to a .env file with overrides")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *envFile != "" {
		merged, err := cfg.LoadEnvFile(*envFile)
		if err != nil {
			return cfg, err
		}
		cfg = merged
	}

	// Flags win over the env file, but only when actually set.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Iterations = *iterations
		case "delay":
			cfg.Delay = *delay
		case "trials":
			cfg.Trials = *trials
		case "no-yield":
			cfg.Yield = !*noYield
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func workloadOptions(cfg config.Config) workload.Options {
	return workload.Options{
		Iterations:   cfg.Iterations,
		Delay:        cfg.Delay,
		DisableYield: !cfg.Yield,
	}
}

// runProtected runs the Peterson-bracketed workload cfg.Trials times.
// Returns false if any trial misses the exact count.
func runProtected(cfg config.Config) bool {
	log := logger.Get()
	log.Info().
		Int("iterations", cfg.Iterations).
		Int("trials", cfg.Trials).
		Msg("starting protected workload")

	ok := true
	for trial := 0; trial < cfg.Trials; trial++ {
		actual, err := workload.RunProtected(workloadOptions(cfg))
		if err != nil {
			log.Error().Err(err).Msg("protected workload failed")
			return false
		}

		v := report.Verdict{
			Mode:     report.ModeProtected,
			Expected: int64(cfg.Iterations),
			Actual:   actual,
		}
		v.Log(log)
		ok = ok && v.OK()
	}
	return ok
}

// runUnprotected runs the bare workload cfg.Trials times. Lost updates
// are acceptable output; only a corrupt (overshooting) counter fails.
func runUnprotected(cfg config.Config) bool {
	log := logger.Get()
	log.Info().
		Int("iterations", cfg.Iterations).
		Dur("delay", cfg.Delay).
		Int("trials", cfg.Trials).
		Msg("starting unsynchronized workload")

	ok := true
	for trial := 0; trial < cfg.Trials; trial++ {
		actual, err := workload.RunUnsynchronized(workloadOptions(cfg))
		if err != nil {
			log.Error().Err(err).Msg("unsynchronized workload failed")
			return false
		}

		v := report.Verdict{
			Mode:     report.ModeUnsynchronized,
			Expected: int64(cfg.Iterations),
			Actual:   actual,
		}
		v.Log(log)
		ok = ok && v.OK()
	}
	return ok
}

// runBoth contrasts the two workloads back to back.
func runBoth(cfg config.Config) bool {
	okProtected := runProtected(cfg)
	okUnprotected := runUnprotected(cfg)
	return okProtected && okUnprotected
}
