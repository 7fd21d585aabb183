// Package cpu implements the Intcode machine, its assembler and disassembler.
//
// A Process executes a Program: a sequence of 64-bit signed words that
// double as data and instructions. An instruction word holds an
// operation in its two low decimal digits, and one addressing mode digit
// per operand above them: direct (0), immediate (1) or relative to the
// relative base register (2). Memory starts as a copy of the program and
// grows to whatever address the program writes.
//
// The Process never blocks on input or output. Resume runs until the
// program needs an input, produces an output, halts or faults, and
// reports which through its Status; Feed supplies a pending input.
// Outputs layers a lazy output sequence on top of that protocol.
//
// The assembler accepts the mnemonics add, mul, in, out, jnz, jz, lt,
// eq, arb and halt, with operands written N, #N or @N, plus labels,
// .equ, .data, .macro/.endm and $(...) compile-time expressions.
package cpu
