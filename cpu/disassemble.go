package cpu

import (
	"strconv"
)

// Disassemble converts a program into a Listing.
//
// Each word that decodes to an instruction whose operands fit in the
// program becomes an instruction line; anything else becomes a .data
// line. Assembling Text() of the listing gives back prog.
func Disassemble(prog Program) (lst *Listing) {
	lst = &Listing{}

	var data *Line
	for pc := 0; pc < len(prog); {
		word := prog[pc]
		inst, err := Decode(word)
		width := int(inst.Op.Width())
		if err == nil && Encode(inst) == word && pc+width <= len(prog) {
			for n := range inst.Params {
				inst.Params[n].Value = prog[pc+1+n]
			}
			lst.Lines = append(lst.Lines, Line{
				LineNo: len(lst.Lines) + 1,
				Pc:     pc,
				Words:  inst.Words(),
				Codes:  inst.Codes(),
			})
			data = nil
			pc += width
			continue
		}

		// Runs of data words share a line.
		if data == nil {
			lst.Lines = append(lst.Lines, Line{
				LineNo: len(lst.Lines) + 1,
				Pc:     pc,
				Words:  []string{".data"},
			})
			data = &lst.Lines[len(lst.Lines)-1]
		}
		data.Words = append(data.Words, strconv.FormatInt(word, 10))
		data.Codes = append(data.Codes, word)
		pc++
	}

	return
}
