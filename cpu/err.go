package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Error classes
	ErrDecode    = errors.New(f("decode"))
	ErrExecution = errors.New(f("execution"))

	// Execution faults
	ErrWriteToImmediate = errors.New(f("write to immediate"))

	// Caller precondition violations
	ErrFeedNotAwaiting = errors.New(f("feed while not awaiting input"))

	// Program loader errors
	ErrProgramEmpty = errors.New(f("program empty"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrEquateLoop         = errors.New(f(".equ recursion too deep"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrUnknownOpcode is the operation selector of a word that is not an
// instruction.
type ErrUnknownOpcode int64

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode %d", int64(err))
}

func (err ErrUnknownOpcode) Is(target error) bool {
	return target == ErrDecode
}

// ErrUnknownMode is an addressing mode digit outside of 0, 1 and 2.
type ErrUnknownMode int64

func (err ErrUnknownMode) Error() string {
	return f("unknown mode %d", int64(err))
}

func (err ErrUnknownMode) Is(target error) bool {
	return target == ErrDecode
}

// ErrNegativeAddress is an operand or jump target resolving below address 0.
type ErrNegativeAddress int64

func (err ErrNegativeAddress) Error() string {
	return f("negative address %d", int64(err))
}

func (err ErrNegativeAddress) Is(target error) bool {
	return target == ErrExecution
}

// ErrFault records where a Process stopped on a decode error or execution fault.
type ErrFault struct {
	Pc   int64 // Program counter of the faulting instruction.
	Word int64 // Instruction word at Pc.
	Err  error
}

func (err *ErrFault) Error() string {
	return f("pc %d word %d: %v", err.Pc, err.Word, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not an operand", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
