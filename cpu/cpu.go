package cpu

import (
	"errors"
	"fmt"
	"log"
)

// StatusKind is the suspension state of a Process.
type StatusKind int

//go:generate go tool stringer -linecomment -type=StatusKind
const (
	STATUS_PAUSED     = StatusKind(0) // paused
	STATUS_AWAITING   = StatusKind(1) // awaiting
	STATUS_OUTPUTTING = StatusKind(2) // outputting
	STATUS_EXIT       = StatusKind(3) // exit
)

// Status is the state a Process reports when it returns control.
type Status struct {
	Kind        StatusKind
	Destination Parameter // STATUS_AWAITING: resolved store target of the input.
	Value       int64     // STATUS_OUTPUTTING: the produced value.
}

// String returns the status as text.
func (status Status) String() string {
	switch status.Kind {
	case STATUS_AWAITING:
		return fmt.Sprintf("%v(%v)", status.Kind, status.Destination)
	case STATUS_OUTPUTTING:
		return fmt.Sprintf("%v(%d)", status.Kind, status.Value)
	default:
		return status.Kind.String()
	}
}

// Process is the execution context of a single Intcode program.
//
// A Process is driven by one caller at a time: Resume runs until the
// program needs input, produces output, halts or faults; Feed supplies
// the value an awaiting program asked for.
type Process struct {
	Verbose bool // Set to enable verbose logging.

	Pc           int64   // Address of the next instruction.
	RelativeBase int64   // Base of MODE_RELATIVE operands.
	Memory       *Memory // Word store, exclusively owned.

	Steps int // Instructions executed.

	status Status
	fault  error
}

// NewProcess creates a paused process with a copy of prog as its memory.
func NewProcess(prog Program) (proc *Process) {
	proc = &Process{
		Memory: NewMemory(prog),
	}

	return
}

// Status returns the current status.
func (proc *Process) Status() Status {
	return proc.status
}

// Err returns the fault that terminated the process, or nil.
func (proc *Process) Err() error {
	return proc.fault
}

// Peek returns the word at addr.
func (proc *Process) Peek(addr int64) int64 {
	return proc.Memory.Read(addr)
}

// Resume runs the process until it suspends.
//
// While awaiting input or after exit, Resume changes nothing and
// returns the current status. Otherwise instructions execute until an
// input, an output, a halt or a fault. A fault is returned as an
// *ErrFault along with STATUS_EXIT, and again on every later call.
func (proc *Process) Resume() (status Status, err error) {
	switch proc.status.Kind {
	case STATUS_AWAITING, STATUS_EXIT:
		return proc.status, proc.fault
	}

	for {
		res := proc.step()
		if res.eval == evalContinue {
			continue
		}

		if res.eval == evalFault {
			proc.fault = res.err
		}

		proc.status = res.status()
		if proc.Verbose {
			log.Printf("cpu: %v", proc.status)
		}

		return proc.status, proc.fault
	}
}

// Feed stores value to the destination of the pending input and
// pauses the process.
//
// Feeding a process that is not awaiting input is a bug in the
// caller, and panics with ErrFeedNotAwaiting.
func (proc *Process) Feed(value int64) Status {
	if proc.status.Kind != STATUS_AWAITING {
		panic(fmt.Errorf("%w: %v", ErrFeedNotAwaiting, proc.status))
	}

	// Input destinations are resolved and checked when the input
	// instruction executes.
	proc.Memory.Write(proc.status.Destination.Value, value)
	proc.status = Status{Kind: STATUS_PAUSED}

	return proc.status
}

// address converts a fetched Direct or Relative operand into an absolute address.
func (proc *Process) address(param Parameter) (addr int64, err error) {
	addr = param.Value
	if param.Mode == MODE_RELATIVE {
		addr += proc.RelativeBase
	}

	if addr < 0 {
		err = ErrNegativeAddress(addr)
	}

	return
}

// resolve turns a fetched operand into its resolved form for the given role.
func (proc *Process) resolve(param Parameter, role Role) (resolved Parameter, err error) {
	resolved = param

	if role == ROLE_WRITE && !param.Mode.Writable() {
		err = errors.Join(ErrExecution, ErrWriteToImmediate)
		return
	}

	if param.Mode == MODE_IMMEDIATE {
		return
	}

	resolved.Value, err = proc.address(param)
	return
}

// load reads the value of a resolved operand.
func (proc *Process) load(param Parameter) int64 {
	if param.Mode == MODE_IMMEDIATE {
		return param.Value
	}

	return proc.Memory.Read(param.Value)
}

// store writes value to a resolved operand.
func (proc *Process) store(param Parameter, value int64) {
	proc.Memory.Write(param.Value, value)
}

// Fetch decodes the instruction at the program counter and resolves its operands.
func (proc *Process) Fetch() (inst Instruction, err error) {
	inst, err = Decode(proc.Memory.Read(proc.Pc))
	if err != nil {
		return
	}

	roles := inst.Op.Roles()
	for n := range inst.Params {
		param := &inst.Params[n]
		param.Value = proc.Memory.Read(proc.Pc + int64(n) + 1)
		*param, err = proc.resolve(*param, roles[n])
		if err != nil {
			err = fmt.Errorf("%v operand %d: %w", inst.Op, n+1, err)
			return
		}
	}

	return
}

// step executes a single instruction.
func (proc *Process) step() (res result) {
	pc := proc.Pc
	defer func() {
		if res.err != nil {
			res.eval = evalFault
			res.err = &ErrFault{Pc: pc, Word: proc.Memory.Read(pc), Err: res.err}
			if proc.Verbose {
				log.Printf("cpu: %04d: %v", pc, res.err)
			}
		}
	}()

	inst, err := proc.Fetch()
	if err != nil {
		res.err = err
		return
	}

	if proc.Verbose {
		log.Printf("cpu: %04d: %v", pc, inst)
	}

	proc.Steps++

	next_pc := pc + inst.Op.Width()
	args := inst.Params

	switch inst.Op {
	case OP_ADD:
		proc.store(args[2], proc.load(args[0])+proc.load(args[1]))
	case OP_MUL:
		proc.store(args[2], proc.load(args[0])*proc.load(args[1]))
	case OP_IN:
		res = result{eval: evalInput, dest: args[0]}
	case OP_OUT:
		res = result{eval: evalOutput, value: proc.load(args[0])}
	case OP_JNZ, OP_JZ:
		cond := proc.load(args[0]) != 0
		if inst.Op == OP_JZ {
			cond = !cond
		}
		if cond {
			next_pc = proc.load(args[1])
			if next_pc < 0 {
				res.err = fmt.Errorf("%v target: %w", inst.Op, ErrNegativeAddress(next_pc))
				return
			}
		}
	case OP_LT:
		proc.store(args[2], boolWord(proc.load(args[0]) < proc.load(args[1])))
	case OP_EQ:
		proc.store(args[2], boolWord(proc.load(args[0]) == proc.load(args[1])))
	case OP_ARB:
		proc.RelativeBase += proc.load(args[0])
	case OP_HALT:
		res = result{eval: evalHalt}
		return
	}

	proc.Pc = next_pc

	return
}

// boolWord returns 1 for true, and 0 for false.
func boolWord(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}
