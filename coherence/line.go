package coherence

import "sync/atomic"

// cacheLine is one core's private cache slot: a value and a coherence state.
// The zero value is an Invalid line holding 0.
//
// Both fields are atomics because the read hit path inspects them without
// holding the engine lock. The atomics rule out torn values on that path;
// they provide no ordering beyond that, which matches the model: a hit read
// racing a write may observe either the old or the new value.
type cacheLine struct {
	value atomic.Int64
	state atomic.Int32
}

func (l *cacheLine) State() LineState {
	return LineState(l.state.Load())
}

func (l *cacheLine) setState(s LineState) {
	l.state.Store(int32(s))
}

func (l *cacheLine) Value() int64 {
	return l.value.Load()
}

func (l *cacheLine) setValue(v int64) {
	l.value.Store(v)
}
