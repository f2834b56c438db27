package coherence

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/akita/v4/mem/mem"
)

const (
	wordAddr = 0
	wordSize = 8
)

// SharedMemory is the single backing word every core synchronizes against.
// The word lives in an Akita storage, encoded little-endian; callers must
// serialize access themselves (the engine only touches it inside its
// critical section).
type SharedMemory struct {
	storage *mem.Storage
}

// NewSharedMemory creates a SharedMemory holding the word 0.
func NewSharedMemory() *SharedMemory {
	return &SharedMemory{
		storage: mem.NewStorage(wordSize),
	}
}

// Load returns the current memory word.
func (m *SharedMemory) Load() int64 {
	data, err := m.storage.Read(wordAddr, wordSize)
	if err != nil {
		// In-range accesses on a fixed-size storage cannot fail.
		panic(fmt.Sprintf("shared memory read failed: %v", err))
	}
	return int64(binary.LittleEndian.Uint64(data))
}

// Store replaces the memory word.
func (m *SharedMemory) Store(v int64) {
	data := make([]byte, wordSize)
	binary.LittleEndian.PutUint64(data, uint64(v))
	if err := m.storage.Write(wordAddr, data); err != nil {
		panic(fmt.Sprintf("shared memory write failed: %v", err))
	}
}
