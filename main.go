// Package main provides the entry point for cohsim.
// Cohsim is a didactic two-core cache-coherence simulator.
//
// For the full CLI, use: go run ./cmd/cohsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Cohsim - Two-Core Cache Coherence Simulator")
	fmt.Println("")
	fmt.Println("Usage: cohsim [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config      Path to simulation configuration JSON file")
	fmt.Println("  -iterations  Override per-core operation count")
	fmt.Println("  -write-prob  Override write probability in [0,1]")
	fmt.Println("  -seed        Seed for the workload random sources")
	fmt.Println("  -v           Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/cohsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/cohsim' instead.")
	}
}
