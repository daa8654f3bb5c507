package memmap

import (
	"errors"

	"github.com/ezrec/xbacktrace/translate"
)

var f = translate.From

var (
	ErrRegionInvalid = errors.New(f("region empty or inverted"))
	ErrMapEmpty      = errors.New(f("memory map has no regions"))
)

type ErrChipUnknown string

func (err ErrChipUnknown) Error() string {
	return f("chip %v unknown", string(err))
}

type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("key %v unknown", string(err))
}

type ErrExpr string

func (err ErrExpr) Error() string {
	return f("'%v' is not a boolean expression", string(err))
}

type ErrRegion struct {
	Index int
	Err   error
}

func (err *ErrRegion) Error() string {
	return f("region %v %v", err.Index, err.Err)
}

func (err *ErrRegion) Unwrap() error {
	return err.Err
}
