package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Tape provides sequential I/O of words over text streams.
// It reads one decimal integer per line from Input, skipping blank
// lines, and writes one decimal integer per line to Output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
	lineNo  int
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Err returns the first read or parse error seen by Receive.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields words from the input stream.
// The iterator ends at end of input, or at the first line that is not
// an integer. The tape does not advance past a bad line.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.err != nil || tc.Input == nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
		}

		for tc.scanner.Scan() {
			tc.lineNo++
			text := strings.TrimSpace(tc.scanner.Text())
			if len(text) == 0 {
				continue
			}
			value, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				tc.err = &ErrTapeValue{LineNo: tc.lineNo, Text: text}
				return
			}
			if !yield(value) {
				return
			}
		}

		tc.err = tc.scanner.Err()
	}
}

// Send writes a word to the output stream, on its own line.
func (tc *Tape) Send(value int64) (err error) {
	_, err = fmt.Fprintln(tc.Output, value)
	return
}
