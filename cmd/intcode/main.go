// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
)

// patch replaces words 1 and 2 of prog with noun and verb.
// A negative noun or verb keeps the word already there.
func patch(prog cpu.Program, noun, verb int64) cpu.Program {
	if noun < 0 && verb < 0 {
		return prog
	}

	if noun < 0 {
		noun = 0
		if len(prog) > 1 {
			noun = prog[1]
		}
	}
	if verb < 0 {
		verb = 0
		if len(prog) > 2 {
			verb = prog[2]
		}
	}

	return prog.Replace(noun, verb)
}

func main() {
	var assemble bool
	var listing bool
	var input string
	var output string
	var inline string
	var noun int64
	var verb int64
	var verbose bool

	flag.BoolVar(&assemble, "a", false, "Program is assembly source")
	flag.BoolVar(&listing, "l", false, "Print listing, do not execute")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.StringVar(&inline, "x", "", "Comma separated inputs, read before the tape")
	flag.Int64Var(&noun, "noun", -1, "Replace word 1 of the program")
	flag.Int64Var(&verb, "verb", -1, "Replace word 2 of the program")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one program path, got %v", os.Args[0], flag.Args())
	}

	path := flag.Arg(0)
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	var prog cpu.Program
	var lst *cpu.Listing

	if assemble {
		asm := &cpu.Assembler{Verbose: verbose}
		lst, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		prog = lst.Binary()
	} else {
		prog, err = cpu.ParseProgram(inf)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		lst = cpu.Disassemble(prog)
	}
	inf.Close()

	prog = patch(prog, noun, verb)

	if listing {
		if assemble {
			fmt.Print(lst.String())
		} else {
			fmt.Print(cpu.Disassemble(prog).String())
		}
		return
	}

	emu := emulator.NewEmulator()
	defer emu.Close()

	emu.Verbose = verbose
	emu.Program = prog
	emu.Listing = lst

	if len(inline) != 0 {
		values, err := cpu.ParseProgramString(inline)
		if err != nil {
			log.Fatalf("-x: %v", err)
		}
		err = io.SendAll(&emu.Temporary, slices.Values(values))
		if err != nil {
			log.Fatalf("-x: %v", err)
		}
	}

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	err = emu.Tape.Err()
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	if verbose {
		log.Printf("%v: %d steps, pc %d, %v", path, emu.Steps(), emu.Pc(), emu.Process.Status())
	}
}
