package cpu

import (
	"iter"
	"slices"
)

// Outputs returns the lazy sequence of values the process outputs.
//
// The process is resumed as the sequence is consumed. When it awaits
// input, the next value from inputs is fed. The sequence ends when the
// process exits, or when inputs run dry while the process is awaiting.
// A fault ends the sequence; check Err afterwards.
func (proc *Process) Outputs(inputs iter.Seq[int64]) iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		next, stop := iter.Pull(inputs)
		defer stop()

		for {
			status, _ := proc.Resume()
			switch status.Kind {
			case STATUS_AWAITING:
				value, ok := next()
				if !ok {
					return
				}
				proc.Feed(value)
			case STATUS_OUTPUTTING:
				if !yield(status.Value) {
					return
				}
			case STATUS_EXIT:
				return
			default:
				panic("resume returned while paused")
			}
		}
	}
}

// Run executes prog with the given inputs, and returns all of its outputs.
func Run(prog Program, inputs ...int64) (outputs []int64, err error) {
	proc := NewProcess(prog)
	outputs = slices.Collect(proc.Outputs(slices.Values(inputs)))
	err = proc.Err()

	return
}
