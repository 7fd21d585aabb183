// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// TEMPORARY_SIZE is the capacity of the inline input buffer.
const TEMPORARY_SIZE = 4096

// Emulator state. Process + listing + IO channels.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Process *cpu.Process // Reference to the running process.
	Program cpu.Program  // Program image loaded by Reset.
	Listing *cpu.Listing // Source lines of the program, for error locations.

	Temporary io.Temporary // Inline inputs, read before the tape.
	Tape      io.Tape      // Line oriented input and output.

	Input  io.Channel // Inputs fed to the process.
	Output io.Channel // Outputs of the process.

	next func() (int64, bool)
	stop func()
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Listing: &cpu.Listing{},
	}

	emu.Temporary.Capacity = TEMPORARY_SIZE
	emu.Temporary.Rewind()

	emu.Input = io.Concat{&emu.Temporary, &emu.Tape}
	emu.Output = &emu.Tape

	return
}

// Close the emulator
func (emu *Emulator) Close() (err error) {
	if emu.stop != nil {
		emu.stop()
		emu.next = nil
		emu.stop = nil
	}

	return
}

// Reset creates a fresh process for the program, and restarts input.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Program) == 0 {
		err = cpu.ErrProgramEmpty
		return
	}

	emu.Close()

	emu.Process = cpu.NewProcess(emu.Program)
	emu.Process.Verbose = emu.Verbose
	emu.next, emu.stop = iter.Pull(emu.Input.Receive())

	return
}

// Steps returns the total instructions executed since a reset.
func (emu *Emulator) Steps() int {
	if emu.Process == nil {
		return 0
	}
	return emu.Process.Steps
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int64 {
	if emu.Process == nil {
		return 0
	}
	return emu.Process.Pc
}

// lineAt returns the source line number of the word at pc.
func (emu *Emulator) lineAt(pc int64) int {
	if emu.Listing == nil {
		return 0
	}

	dbg := emu.Listing.Debug(pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.lineAt(emu.Pc())
}

// Tick resumes the process once, and services the status it stops in.
//
// Tick is done when the process exits, or when it awaits input and the
// input channel is exhausted. A fault is returned as an *ErrRuntime
// with the line of the faulting instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Process == nil || emu.next == nil {
		err = ErrNotReset
		return
	}

	// Set process verbosity
	emu.Process.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	status, err := emu.Process.Resume()
	if err != nil {
		var fault *cpu.ErrFault
		if errors.As(err, &fault) {
			lineno = emu.lineAt(fault.Pc)
		}
		done = true
		return
	}

	switch status.Kind {
	case cpu.STATUS_AWAITING:
		value, ok := emu.next()
		if !ok {
			if emu.Verbose {
				log.Printf("emulator: input exhausted at pc %d", emu.Pc())
			}
			done = true
			return
		}
		emu.Process.Feed(value)
	case cpu.STATUS_OUTPUTTING:
		err = emu.Output.Send(status.Value)
	case cpu.STATUS_EXIT:
		done = true
	}

	return
}

// Run ticks the emulator until it is done.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
