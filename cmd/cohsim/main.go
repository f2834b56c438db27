// Package main provides the entry point for cohsim.
// Cohsim runs the two-core workload once with cache coherence disabled and
// once with it enabled, and reports the throughput/consistency trade-off.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/cohsim/runner"
)

var (
	configPath = flag.String("config", "", "Path to simulation configuration JSON file")
	iterations = flag.Int("iterations", 0, "Override per-core operation count")
	writeProb  = flag.Float64("write-prob", -1, "Override write probability in [0,1]")
	seed       = flag.Int64("seed", 0, "Seed for the workload random sources (0 = time-based)")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	config := runner.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = runner.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *iterations > 0 {
		config.Iterations = *iterations
	}
	if *writeProb >= 0 {
		config.WriteProbability = *writeProb
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	r, err := runner.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Cores: %d\n", config.CoreCount)
		fmt.Printf("Iterations per core: %d\n", config.Iterations)
		fmt.Printf("Write probability: %.2f\n", config.WriteProbability)
		fmt.Printf("Write value range: [%d, %d]\n", config.ValueMin, config.ValueMax)
		fmt.Printf("Seed: %d\n", config.Seed)
		fmt.Println()
	}

	withoutCoherence, err := r.Run(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running without coherence: %v\n", err)
		os.Exit(1)
	}

	withCoherence, err := r.Run(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running with coherence: %v\n", err)
		os.Exit(1)
	}

	printResult("Without coherence (fast, inconsistent)", withoutCoherence)
	fmt.Println()
	printResult("With coherence (consistent, invalidation traffic)", withCoherence)

	if withoutCoherence.Elapsed > 0 {
		overhead := withCoherence.ElapsedSeconds() / withoutCoherence.ElapsedSeconds()
		fmt.Printf("\nCoherence wall-clock overhead: %.2fx\n", overhead)
	}
}

func printResult(label string, result runner.Result) {
	fmt.Printf("%s:\n", label)
	fmt.Printf("  Elapsed:               %.6f s\n", result.ElapsedSeconds())
	fmt.Printf("  Memory accesses:       %d\n", result.MemoryAccesses)
	fmt.Printf("  Invalidation messages: %d\n", result.InvalidationMessages)
}
