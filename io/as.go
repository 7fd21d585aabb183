package io

import (
	"iter"
)

// SendAll sends every value of the sequence to the channel, stopping
// at the first error.
func SendAll(ch Channel, values iter.Seq[int64]) (err error) {
	for value := range values {
		err = ch.Send(value)
		if err != nil {
			return
		}
	}
	return
}
