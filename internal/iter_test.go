package internal

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int64{1, 2}), slices.Values([]int64{}), slices.Values([]int64{3}))
	assert.Equal([]int64{1, 2, 3}, slices.Collect(seq))

	assert.Empty(slices.Collect(IterSeqConcat[int64]()))

	// Later sequences are not started when the consumer stops early.
	started := false
	lazy := iter.Seq[int64](func(yield func(int64) bool) {
		started = true
	})
	for value := range IterSeqConcat(slices.Values([]int64{5}), lazy) {
		assert.Equal(int64(5), value)
		break
	}
	assert.False(started)
}
