package cpu

import (
	"io"
	"slices"
	"strconv"
	"strings"
)

// Program is the initial memory image of a Process.
type Program []int64

// ParseProgram reads a program in its text form: comma separated
// decimal integers. Whitespace and newlines around the numbers are
// ignored. Any bad token fails the whole program.
func ParseProgram(input io.Reader) (prog Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return ParseProgramString(string(text))
}

// ParseProgramString parses the text form of a program.
func ParseProgramString(text string) (prog Program, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	tokens := strings.Split(text, ",")
	words := make(Program, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		var value int64
		value, err = strconv.ParseInt(token, 10, 64)
		if err != nil {
			err = ErrParseNumber(token)
			return
		}
		words = append(words, value)
	}

	prog = words
	return
}

// Replace returns a copy of the program with the words at addresses 1
// and 2 set to noun and verb.
func (prog Program) Replace(noun, verb int64) (patched Program) {
	patched = slices.Clone(prog)
	for len(patched) < 3 {
		patched = append(patched, 0)
	}

	patched[1] = noun
	patched[2] = verb

	return
}

// String returns the text form of the program.
func (prog Program) String() string {
	words := make([]string, len(prog))
	for n, value := range prog {
		words[n] = strconv.FormatInt(value, 10)
	}

	return strings.Join(words, ",")
}
