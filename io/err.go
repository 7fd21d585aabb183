package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull     = errors.New(f("channel full"))
	ErrChannelReadOnly = errors.New(f("channel read only"))
)

// ErrTapeValue is a tape line that does not hold an integer.
type ErrTapeValue struct {
	LineNo int
	Text   string
}

func (err *ErrTapeValue) Error() string {
	return f("tape line %d: '%v' is not an integer", err.LineNo, err.Text)
}
