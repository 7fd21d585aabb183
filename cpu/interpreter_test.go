package cpu

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputs(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcess(mustProgram(t, largerThan8))
	outputs := slices.Collect(proc.Outputs(slices.Values([]int64{9})))
	assert.Equal([]int64{1001}, outputs)
	assert.Equal(STATUS_EXIT, proc.Status().Kind)
	assert.NoError(proc.Err())
}

func TestOutputsInputExhausted(t *testing.T) {
	assert := assert.New(t)

	proc := NewProcess(mustProgram(t, largerThan8))
	outputs := slices.Collect(proc.Outputs(slices.Values([]int64{})))
	assert.Empty(outputs)
	assert.Equal(STATUS_AWAITING, proc.Status().Kind)
	assert.NoError(proc.Err())

	// The process picks up where it left off.
	outputs = slices.Collect(proc.Outputs(slices.Values([]int64{8})))
	assert.Equal([]int64{1000}, outputs)
	assert.Equal(STATUS_EXIT, proc.Status().Kind)
}

func TestOutputsBreak(t *testing.T) {
	assert := assert.New(t)

	prog := mustProgram(t, quine)
	proc := NewProcess(prog)

	var head []int64
	for value := range proc.Outputs(slices.Values([]int64{})) {
		head = append(head, value)
		if len(head) == 3 {
			break
		}
	}
	assert.Equal([]int64(prog[:3]), head)
	assert.Equal(STATUS_OUTPUTTING, proc.Status().Kind)

	tail := slices.Collect(proc.Outputs(slices.Values([]int64{})))
	assert.Equal([]int64(prog[3:]), tail)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	outputs, err := Run(mustProgram(t, largerThan8), 7)
	assert.NoError(err)
	assert.Equal([]int64{999}, outputs)

	// Output then fault.
	outputs, err = Run(Program{104, 5, 77})
	assert.Equal([]int64{5}, outputs)
	assert.ErrorIs(err, ErrDecode)
	assert.ErrorIs(err, ErrUnknownOpcode(77))

	// Unused inputs are ignored.
	outputs, err = Run(Program{99}, 1, 2, 3)
	assert.NoError(err)
	assert.Empty(outputs)
}
