package regs

import (
	"github.com/ezrec/xbacktrace/translate"
)

var f = translate.From

// ErrContextSize is returned when a binary trap frame has the wrong length.
type ErrContextSize struct {
	Size int
}

func (err *ErrContextSize) Error() string {
	return f("context is %v bytes, expected %v", err.Size, CONTEXT_SIZE)
}
