package coherence

import "sync"

// NumCores is the number of cores the engine models. The protocol below is
// written for exactly two agents; core ids are drawn from {0, 1}.
const NumCores = 2

// Stats holds the traffic counters accumulated by an Engine.
type Stats struct {
	// MemoryAccesses counts critical-section entries that touched the
	// backing word: every write, plus every read issued on an Invalid line.
	MemoryAccesses uint64
	// InvalidationMessages counts writes that forced the sibling core's
	// line from a usable state to Invalid.
	InvalidationMessages uint64
}

// probeEvent identifies a critical-section boundary for test instrumentation.
type probeEvent int

const (
	probeEnter probeEvent = iota
	probeExit
)

// Engine implements the per-access coherence state machine for two cores
// sharing one memory word.
//
// In coherent mode a write invalidates the sibling's usable line, and a
// read that fetches from memory aligns a usable sibling line to Shared. In
// non-coherent mode lines are simply marked Valid and siblings are left
// untouched, so they can keep serving stale values; that inconsistency is
// the behavior being measured, not a defect.
//
// One mutex per engine serializes every state mutation. The only operation
// outside the lock is the read hit path.
type Engine struct {
	mu sync.Mutex

	coherent bool
	lines    [NumCores]cacheLine
	memory   *SharedMemory

	memoryAccesses       uint64
	invalidationMessages uint64

	// csProbe, when non-nil, is invoked at critical-section entry and exit
	// while the lock is held. Set only by tests.
	csProbe func(probeEvent)
}

// NewEngine creates an Engine with both lines Invalid and the memory word 0.
// The mode is fixed for the engine's lifetime.
func NewEngine(coherent bool) *Engine {
	return &Engine{
		coherent: coherent,
		memory:   NewSharedMemory(),
	}
}

// Coherent reports whether the engine runs the invalidation protocol.
func (e *Engine) Coherent() bool {
	return e.coherent
}

// Read returns the value core coreID observes for the shared word.
//
// A usable line is served locally without taking the lock and without
// touching the counters. An Invalid line fetches the word from memory
// inside the critical section, counts one memory access, and becomes
// Shared (coherent) or Valid (non-coherent). A coherent fetch that finds
// the sibling line usable aligns it to Shared; that is a state alignment,
// not an eviction, and is not counted as an invalidation.
//
// A Shared line keeps serving its copy until invalidated; it never
// re-reads memory on a hit.
func (e *Engine) Read(coreID int) int64 {
	line := &e.lines[coreID]
	if line.State().Usable() {
		return line.Value()
	}

	e.mu.Lock()
	e.probe(probeEnter)

	e.memoryAccesses++
	v := e.memory.Load()
	line.setValue(v)
	if e.coherent {
		line.setState(StateShared)
		sibling := &e.lines[siblingOf(coreID)]
		if sibling.State() != StateInvalid {
			sibling.setState(StateShared)
		}
	} else {
		line.setState(StateValid)
	}

	e.probe(probeExit)
	e.mu.Unlock()
	return v
}

// Write stores value to the shared word on behalf of core coreID.
//
// Writes always enter the critical section: the write goes through to
// memory so the backing word stays the source of truth for later fetches
// in either mode. Each write counts one memory access. In coherent mode
// the writer's line becomes Modified and a usable sibling line is
// invalidated, counting one invalidation message. In non-coherent mode the
// writer's line becomes Valid and the sibling is left alone.
func (e *Engine) Write(coreID int, value int64) {
	line := &e.lines[coreID]

	e.mu.Lock()
	e.probe(probeEnter)

	e.memoryAccesses++
	e.memory.Store(value)
	line.setValue(value)
	if e.coherent {
		line.setState(StateModified)
		sibling := &e.lines[siblingOf(coreID)]
		if sibling.State() != StateInvalid {
			e.invalidationMessages++
			sibling.setState(StateInvalid)
		}
	} else {
		line.setState(StateValid)
	}

	e.probe(probeExit)
	e.mu.Unlock()
}

// Stats returns the current counter values.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		MemoryAccesses:       e.memoryAccesses,
		InvalidationMessages: e.invalidationMessages,
	}
}

// LineState returns the coherence state of core coreID's line.
func (e *Engine) LineState(coreID int) LineState {
	return e.lines[coreID].State()
}

// LineValue returns the value held in core coreID's line.
func (e *Engine) LineValue(coreID int) int64 {
	return e.lines[coreID].Value()
}

// MemoryValue returns the current backing word.
func (e *Engine) MemoryValue() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.memory.Load()
}

func (e *Engine) probe(ev probeEvent) {
	if e.csProbe != nil {
		e.csProbe(ev)
	}
}

// siblingOf returns the other core's id.
func siblingOf(coreID int) int {
	return 1 - coreID
}
