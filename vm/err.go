package vm

import (
	"errors"

	"github.com/ezrec/uvm8/translate"
)

var f = translate.From

var (
	// Program builder errors
	ErrProgramFull = errors.New(f("program full"))
)

// ErrCode reports a cell Append rejected: a word no Make constructor can
// produce.
type ErrCode Code

func (ec ErrCode) Error() string {
	return f("bad code 0x%04x %v", uint16(ec), Code(ec).String())
}

func (ec ErrCode) Is(err error) (ok bool) {
	_, ok = err.(ErrCode)
	return
}
