package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Line is a line of assembly text with its location and generated words.
type Line struct {
	LineNo int      // Source line number.
	Pc     int      // Address of the first generated word.
	Words  []string // Source words.
	Codes  []int64  // Generated words.

	links map[int]string // Code index to label, resolved at end of assembly.
}

// Listing is an assembled or disassembled program.
type Listing struct {
	Lines []Line
}

// Debug locates an address inside a Listing.
type Debug struct {
	*Line
	Index int // Index of the address within Line.Codes.
}

// Debug returns the line that generated the word at pc.
func (lst *Listing) Debug(pc int64) (dbg Debug) {
	for n, line := range lst.Lines {
		if pc >= int64(line.Pc) && pc < int64(line.Pc+len(line.Codes)) {
			dbg = Debug{
				Line:  &lst.Lines[n],
				Index: int(pc - int64(line.Pc)),
			}
			break
		}
	}

	return
}

// Binary returns the program image of the listing.
func (lst *Listing) Binary() (prog Program) {
	prog = Program{}
	for pc, code := range lst.Codes() {
		for int64(len(prog)) < pc {
			prog = append(prog, 0)
		}
		prog = append(prog, code)
	}

	return
}

// Codes iterates over the generated words and their addresses.
func (lst *Listing) Codes() iter.Seq2[int64, int64] {
	return func(yield func(pc int64, code int64) bool) {
		for _, line := range lst.Lines {
			pc := int64(line.Pc)
			for n, code := range line.Codes {
				if !yield(pc+int64(n), code) {
					return
				}
			}
		}
	}
}

// Text returns the listing as assembly source, one line per Line.
func (lst *Listing) Text() string {
	var text strings.Builder
	for _, line := range lst.Lines {
		text.WriteString(strings.Join(line.Words, " "))
		text.WriteString("\n")
	}

	return text.String()
}

// String returns the listing with addresses and generated words.
func (lst *Listing) String() string {
	var text strings.Builder
	for _, line := range lst.Lines {
		codes := make([]string, len(line.Codes))
		for n, code := range line.Codes {
			codes[n] = fmt.Sprintf("%d", code)
		}
		fmt.Fprintf(&text, "%04d: %-24s ; %s\n", line.Pc, strings.Join(line.Words, " "), strings.Join(codes, ","))
	}

	return text.String()
}
