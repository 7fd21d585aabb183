package cpu

import (
	"fmt"
	"strings"
)

// Op is an instruction operation code.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD  = Op(1)  // add
	OP_MUL  = Op(2)  // mul
	OP_IN   = Op(3)  // in
	OP_OUT  = Op(4)  // out
	OP_JNZ  = Op(5)  // jnz
	OP_JZ   = Op(6)  // jz
	OP_LT   = Op(7)  // lt
	OP_EQ   = Op(8)  // eq
	OP_ARB  = Op(9)  // arb
	OP_HALT = Op(99) // halt
)

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_DIRECT    = Mode(0) // direct
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

// Writable returns true if an operand in this mode can be stored to.
func (mode Mode) Writable() bool {
	return mode != MODE_IMMEDIATE
}

// MAX_OPERANDS is the number of mode digits in an instruction word.
const MAX_OPERANDS = 3

// Role is how an instruction uses one of its operands.
type Role int

const (
	ROLE_READ  = Role(0) // Operand value is read.
	ROLE_WRITE = Role(1) // Operand is the destination of a store.
)

// opRoles holds the fixed operand layout of every operation.
var opRoles = map[Op][]Role{
	OP_ADD:  {ROLE_READ, ROLE_READ, ROLE_WRITE},
	OP_MUL:  {ROLE_READ, ROLE_READ, ROLE_WRITE},
	OP_IN:   {ROLE_WRITE},
	OP_OUT:  {ROLE_READ},
	OP_JNZ:  {ROLE_READ, ROLE_READ},
	OP_JZ:   {ROLE_READ, ROLE_READ},
	OP_LT:   {ROLE_READ, ROLE_READ, ROLE_WRITE},
	OP_EQ:   {ROLE_READ, ROLE_READ, ROLE_WRITE},
	OP_ARB:  {ROLE_READ},
	OP_HALT: {},
}

// Valid returns true for the ten defined operations.
func (op Op) Valid() bool {
	_, ok := opRoles[op]
	return ok
}

// Roles returns the operand roles of the operation, in operand order.
func (op Op) Roles() []Role {
	return opRoles[op]
}

// Arity returns the number of operands of the operation.
func (op Op) Arity() int {
	return len(opRoles[op])
}

// Width returns the number of words the instruction occupies.
func (op Op) Width() int64 {
	return int64(1 + op.Arity())
}

// Parameter is an instruction operand.
//
// Straight out of Decode, Value is zero. Once fetched it is the raw word
// following the instruction, and once resolved it is the absolute
// address (MODE_DIRECT, MODE_RELATIVE) or the literal (MODE_IMMEDIATE).
type Parameter struct {
	Mode  Mode
	Value int64
}

// String returns the assembly text for the operand.
func (param Parameter) String() string {
	switch param.Mode {
	case MODE_IMMEDIATE:
		return fmt.Sprintf("#%d", param.Value)
	case MODE_RELATIVE:
		return fmt.Sprintf("@%d", param.Value)
	default:
		return fmt.Sprintf("%d", param.Value)
	}
}

// Instruction is a decoded instruction word.
//
// Only Decode and MakeInstruction build one, so Params always holds
// exactly Op.Arity() operands.
type Instruction struct {
	Op     Op
	Params []Parameter
}

// MakeInstruction creates an instruction, checking the operand count.
func MakeInstruction(op Op, params ...Parameter) (inst Instruction, err error) {
	if !op.Valid() {
		err = ErrUnknownOpcode(op)
		return
	}

	switch {
	case len(params) < op.Arity():
		err = ErrOpcodeValueMissing
		return
	case len(params) > op.Arity():
		err = ErrOpcodeExtraArgs
		return
	}

	inst = Instruction{Op: op, Params: params}
	return
}

// Decode splits an instruction word into its operation and operand modes.
//
// The operation is the word modulo 100; the next three decimal digits,
// least significant first, are the modes of the operands. All three mode
// digits must be valid, even those past the arity of the operation.
func Decode(word int64) (inst Instruction, err error) {
	op := Op(word % 100)
	if !op.Valid() {
		err = ErrUnknownOpcode(word % 100)
		return
	}

	modes := word / 100
	params := make([]Parameter, op.Arity())
	for n := range MAX_OPERANDS {
		digit := modes % 10
		modes /= 10
		switch Mode(digit) {
		case MODE_DIRECT, MODE_IMMEDIATE, MODE_RELATIVE:
			if n < len(params) {
				params[n].Mode = Mode(digit)
			}
		default:
			err = ErrUnknownMode(digit)
			return
		}
	}

	inst = Instruction{Op: op, Params: params}
	return
}

// Encode returns the instruction word for the instruction.
func Encode(inst Instruction) (word int64) {
	scale := int64(100)
	word = int64(inst.Op)
	for _, param := range inst.Params {
		word += int64(param.Mode) * scale
		scale *= 10
	}

	return
}

// Codes returns the words of the instruction: the encoded instruction
// followed by the operand values.
func (inst Instruction) Codes() (codes []int64) {
	codes = append(codes, Encode(inst))
	for _, param := range inst.Params {
		codes = append(codes, param.Value)
	}

	return
}

// Words returns the assembly language words of this instruction.
func (inst Instruction) Words() (words []string) {
	words = append(words, inst.Op.String())
	for _, param := range inst.Params {
		words = append(words, param.String())
	}

	return
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	return strings.Join(inst.Words(), " ")
}
