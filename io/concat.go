package io

import (
	"iter"

	"github.com/ezrec/intcode/internal"
)

// Concat reads its channels one after another.
type Concat []Channel

var _ Channel = (Concat)(nil)

// Rewind rewinds every channel.
func (cc Concat) Rewind() {
	for _, ch := range cc {
		ch.Rewind()
	}
}

// Receive yields the words of each channel in turn.
func (cc Concat) Receive() iter.Seq[int64] {
	seqs := make([]iter.Seq[int64], len(cc))
	for n, ch := range cc {
		seqs[n] = ch.Receive()
	}

	return internal.IterSeqConcat(seqs...)
}

// Send is not possible on a concatenation.
func (cc Concat) Send(value int64) error {
	return ErrChannelReadOnly
}
