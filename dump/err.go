package dump

import (
	"errors"

	"github.com/ezrec/xbacktrace/translate"
)

var f = translate.From

var (
	// Container errors
	ErrMagic     = errors.New(f("not a capture container"))
	ErrChecksum  = errors.New(f("capture checksum mismatch"))
	ErrTruncated = errors.New(f("capture truncated"))
	ErrTrailing  = errors.New(f("capture has trailing data"))

	// Segment errors
	ErrSegmentOverlap = errors.New(f("segment overlaps"))
	ErrSegmentRange   = errors.New(f("segment exceeds address space"))
)

type ErrUnmapped uint32

func (err ErrUnmapped) Error() string {
	return f("address 0x%08x unmapped", uint32(err))
}

type ErrSegmentArg string

func (err ErrSegmentArg) Error() string {
	return f("'%v' is not a base:file segment", string(err))
}

type ErrSegment struct {
	Index int
	Err   error
}

func (err *ErrSegment) Error() string {
	return f("segment %v %v", err.Index, err.Err)
}

func (err *ErrSegment) Unwrap() error {
	return err.Err
}
