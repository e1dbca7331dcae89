// Package main implements the petersonlock demo CLI.
//
// The tool runs a shared-counter workload under two regimes and
// reports whether the attempted increment total survived:
//
//  1. protected - every increment bracketed by a Peterson lock's
//     entry/exit sections; the final count must be exact.
//  2. unprotected - the same non-atomic read-modify-write with no
//     bracketing and an injected race window; lost updates are the
//     expected (and reported) outcome.
//
// Usage:
//
//	petersonlock protected      # exact-count demonstration
//	petersonlock unprotected    # lost-update demonstration
//	petersonlock both           # contrast run, protected then unprotected
//
// This is the CLI entry point; the lock itself lives in the peterson
// package.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/petersonlock/peterson"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "protected":
		os.Exit(demoCommand(os.Args[2:], runProtected))
	case "unprotected":
		os.Exit(demoCommand(os.Args[2:], runUnprotected))
	case "both":
		os.Exit(demoCommand(os.Args[2:], runBoth))
	case "version", "--version", "-v":
		info := peterson.GetInfo()
		fmt.Printf("petersonlock version %s (%s)\n", info.Version, info.Algorithm)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`petersonlock - two-goroutine mutual exclusion demo

USAGE:
    petersonlock <command> [flags]

COMMANDS:
    protected      Run the Peterson-protected counter workload
    unprotected    Run the unsynchronized counter workload
    both           Run both workloads and contrast the results
    version        Show version information
    help           Show this help message

FLAGS:
    -n <count>     Total increments attempted (default 100000, must be even)
    -delay <dur>   Race window slept inside each unsynchronized
                   increment (default 1us)
    -trials <k>    Repeat the workload k times (default 1)
    -no-yield      Spin without the runtime.Gosched courtesy
    -env <path>    Load overrides from a .env file before applying flags

EXAMPLES:
    # Exact-count demonstration with the default workload
    petersonlock protected

    # Make lost updates very likely
    petersonlock unprotected -n 2000 -delay 50us

    # Ten back-to-back protected trials
    petersonlock protected -trials 10

ABOUT:
    Peterson's algorithm serializes two participants using only two
    interest flags and a turn cell, all accessed with sequentially
    consistent atomics - no OS mutex involved. The protected run must
    reach its attempted total exactly; any shortfall is reported as an
    implementation defect and the command exits non-zero. The
    unprotected run exists as the contrast baseline: its lost updates
    are the demonstration working as intended.
`)
}
