// Package io provides the integer channels that feed and drain an
// Intcode process: line oriented streams (Tape), bounded in-memory
// queues (Temporary), and channels read one after another (Concat).
package io

import (
	"iter"
)

// Channel defines the interface for all I/O channels of the emulator.
// Channels carry whole Intcode words.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields words from the channel.
	Receive() iter.Seq[int64]
	// Send writes a single word to the channel.
	Send(value int64) error
}
