package cpu

import (
	"slices"
)

// Memory is the word store of a Process.
//
// Addresses below the length of the loaded program live in a dense
// slice; everything written past it lands in a sparse overlay. Reads of
// an address never written return 0. There is no upper bound.
type Memory struct {
	image  []int64
	sparse map[int64]int64
}

// NewMemory creates a memory holding a copy of the program image.
func NewMemory(prog Program) (mem *Memory) {
	mem = &Memory{
		image:  slices.Clone([]int64(prog)),
		sparse: map[int64]int64{},
	}

	return
}

// Read returns the word at addr.
func (mem *Memory) Read(addr int64) (value int64) {
	if addr >= 0 && addr < int64(len(mem.image)) {
		return mem.image[addr]
	}

	return mem.sparse[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr int64, value int64) {
	if addr >= 0 && addr < int64(len(mem.image)) {
		mem.image[addr] = value
		return
	}

	if value == 0 {
		// Zero is the default, no need to keep it.
		delete(mem.sparse, addr)
		return
	}

	mem.sparse[addr] = value
}

// Len returns one past the highest address holding a value.
func (mem *Memory) Len() (size int64) {
	size = int64(len(mem.image))
	for addr := range mem.sparse {
		if addr >= size {
			size = addr + 1
		}
	}

	return
}

// Dump returns a dense copy of memory, from address 0 to Len().
// It allocates Len() words, so it is meant for small memories; use Read
// to inspect a program that writes to far addresses.
func (mem *Memory) Dump() (words []int64) {
	words = make([]int64, mem.Len())
	copy(words, mem.image)
	for addr, value := range mem.sparse {
		if addr >= 0 {
			words[addr] = value
		}
	}

	return
}
