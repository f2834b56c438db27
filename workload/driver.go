// Package workload generates randomized read/write traffic against a
// coherence engine.
package workload

import (
	"math/rand"

	"github.com/sarchlab/cohsim/coherence"
)

// Config holds the workload parameters for one driver.
type Config struct {
	// Iterations is the number of operations the driver issues. Default
	// contract: 1000.
	Iterations int
	// WriteProbability is the chance in [0, 1] that an operation is a
	// write rather than a read. Default contract: 0.5.
	WriteProbability float64
	// ValueMin and ValueMax bound the write payload domain, inclusive.
	// Default contract: [0, 100].
	ValueMin int64
	ValueMax int64
}

// Driver issues a bounded sequence of randomized reads and writes on behalf
// of one core. It is a pure stimulus generator: it holds no results of its
// own, and its only effect is on the engine's state and counters.
type Driver struct {
	coreID int
	config Config
	rng    *rand.Rand
}

// New creates a Driver for the given core.
//
// The driver owns rng for its whole run: a rand.Rand is not safe for
// concurrent use, so concurrent drivers must each receive their own source.
// A seeded source makes a single-threaded run fully deterministic.
func New(coreID int, config Config, rng *rand.Rand) *Driver {
	return &Driver{
		coreID: coreID,
		config: config,
		rng:    rng,
	}
}

// CoreID returns the core id this driver issues operations as.
func (d *Driver) CoreID() int {
	return d.coreID
}

// Run issues the driver's full operation sequence against engine. It always
// runs its iteration count to completion; there is no cancellation.
func (d *Driver) Run(engine *coherence.Engine) {
	for i := 0; i < d.config.Iterations; i++ {
		if d.rng.Float64() < d.config.WriteProbability {
			engine.Write(d.coreID, d.randValue())
		} else {
			engine.Read(d.coreID)
		}
	}
}

// randValue draws a write payload uniformly from [ValueMin, ValueMax].
func (d *Driver) randValue() int64 {
	span := d.config.ValueMax - d.config.ValueMin + 1
	return d.config.ValueMin + d.rng.Int63n(span)
}
