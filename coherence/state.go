// Package coherence models two processor cores sharing a single memory word,
// with and without a MESI-style invalidation protocol.
package coherence

// LineState is the coherence state of one core's private cache line.
//
// Shared, Modified, and Invalid are the protocol states used when coherence
// is enabled. Valid is the degenerate "always usable" marker used when it is
// disabled. The MESI Exclusive state is deliberately not modeled: with a
// write-through engine and two agents it is never distinguishable from
// Modified.
type LineState int32

const (
	// StateInvalid marks a line whose contents must not be served locally.
	StateInvalid LineState = iota
	// StateShared marks a clean line that the other core may also hold.
	StateShared
	// StateModified marks the single line holding the newest value.
	StateModified
	// StateValid marks a usable line in non-coherent mode.
	StateValid
)

// String returns the state name.
func (s LineState) String() string {
	switch s {
	case StateInvalid:
		return "Invalid"
	case StateShared:
		return "Shared"
	case StateModified:
		return "Modified"
	case StateValid:
		return "Valid"
	default:
		return "Unknown"
	}
}

// Usable reports whether a read may be served from the line without
// contacting memory.
func (s LineState) Usable() bool {
	return s != StateInvalid
}
