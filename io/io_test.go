package io

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeReceive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1\n\n  -2 \n+3\n")}
	tape.Rewind()

	assert.Equal([]int64{1, -2, 3}, slices.Collect(tape.Receive()))
	assert.NoError(tape.Err())

	// Rewind is not possible on a tape.
	tape.Rewind()
	assert.Empty(slices.Collect(tape.Receive()))
}

func TestTapeReceiveEarlyStop(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1\n2\n3\n")}

	for value := range tape.Receive() {
		assert.Equal(int64(1), value)
		break
	}

	assert.Equal([]int64{2, 3}, slices.Collect(tape.Receive()))
}

func TestTapeReceiveBadValue(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("4\n\nfive\n6\n")}

	assert.Equal([]int64{4}, slices.Collect(tape.Receive()))

	var bad *ErrTapeValue
	if assert.ErrorAs(tape.Err(), &bad) {
		assert.Equal(3, bad.LineNo)
		assert.Equal("five", bad.Text)
	}

	// The tape stays stopped.
	assert.Empty(slices.Collect(tape.Receive()))
}

type errorReader struct{}

func (er *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestTapeReceiveReadError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: &errorReader{}}
	assert.Empty(slices.Collect(tape.Receive()))
	assert.True(errors.Is(tape.Err(), io.ErrUnexpectedEOF))

	empty := &Tape{}
	assert.Empty(slices.Collect(empty.Receive()))
	assert.NoError(empty.Err())
}

func TestTapeSend(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(42))
	assert.NoError(tape.Send(-7))
	assert.NoError(tape.Send(0))
	assert.Equal("42\n-7\n0\n", output.String())
}

func TestTemporary(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 3}
	temp.Rewind()

	assert.NoError(temp.Send(1))
	assert.NoError(temp.Send(2))
	assert.NoError(temp.Send(3))
	assert.Equal(ErrChannelFull, temp.Send(4))

	for value := range temp.Receive() {
		assert.Equal(int64(1), value)
		break
	}

	// Wraps at the capacity boundary.
	assert.NoError(temp.Send(4))
	assert.Equal([]int64{2, 3, 4}, slices.Collect(temp.Receive()))
	assert.Equal(0, temp.Size)
	assert.Empty(slices.Collect(temp.Receive()))
}

func TestTemporaryRewind(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{
		Capacity:   10,
		ReadIndex:  3,
		WriteIndex: 7,
		Size:       4,
		Data:       []int64{1, 2, 3},
	}

	temp.Rewind()

	assert.Equal(0, temp.ReadIndex)
	assert.Equal(0, temp.WriteIndex)
	assert.Equal(0, temp.Size)
	assert.Equal(10, len(temp.Data))

	// A zero value Temporary allocates on first send.
	lazy := &Temporary{Capacity: 2}
	assert.NoError(lazy.Send(5))
	assert.Equal([]int64{5}, slices.Collect(lazy.Receive()))

	none := &Temporary{}
	assert.Equal(ErrChannelFull, none.Send(1))
}

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 4}
	assert.NoError(SendAll(temp, slices.Values([]int64{7, 8})))

	tape := &Tape{Input: strings.NewReader("9\n10\n")}

	cc := Concat{temp, tape}
	assert.Equal([]int64{7, 8, 9, 10}, slices.Collect(cc.Receive()))
	assert.Equal(ErrChannelReadOnly, cc.Send(1))

	cc.Rewind()
	assert.Equal(4, len(temp.Data))
	assert.Empty(slices.Collect(cc.Receive()))
}

func TestSendAll(t *testing.T) {
	assert := assert.New(t)

	temp := &Temporary{Capacity: 2}
	err := SendAll(temp, slices.Values([]int64{1, 2, 3}))
	assert.Equal(ErrChannelFull, err)
	assert.Equal(2, temp.Size)
	assert.Equal([]int64{1, 2}, slices.Collect(temp.Receive()))
}
