// Package backtrace reconstructs a call chain by walking the saved frames of
// the Xtensa windowed ABI.
//
// The walk is iterative and strictly bounded. Every frame pointer is checked
// against a plausibility predicate before it is dereferenced, and the walk
// stops on the first sign of a broken chain. No heap allocation is performed.
package backtrace

import (
	"iter"
)

const (
	MAX_BACKTRACE_ADDRESSES = 10 // Capacity of a Backtrace.

	RETURN_ADDRESS_OFFSET = 4 * 4 // Saved return address, below the frame pointer.
	FRAME_POINTER_OFFSET  = 3 * 4 // Saved caller frame pointer, below the frame pointer.

	ADDRESS_TAG_MASK = uint32(0b11 << 30) // Window size / cache attribute bits of a return address.
	ADDRESS_BASE     = uint32(0b01 << 30) // Canonical base of the instruction address space.
)

// StopReason records why a walk terminated.
type StopReason int

//go:generate go tool stringer -linecomment -type=StopReason
const (
	STOP_NONE       = StopReason(0) // none
	STOP_REPEAT     = StopReason(1) // repeat
	STOP_ZERO       = StopReason(2) // zero
	STOP_INVALID_FP = StopReason(3) // invalid-fp
	STOP_NULL_FP    = StopReason(4) // null-fp
	STOP_FULL       = StopReason(5) // full
)

// Backtrace is a fixed capacity list of return addresses, innermost caller
// first. Only the first Len() entries are populated.
type Backtrace struct {
	address [MAX_BACKTRACE_ADDRESSES]uint32
	count   int

	Stop StopReason // Reason the walk ended.
}

// Sanitize normalizes the tag bits of a return address, so that all aliases
// of an instruction address compare equal.
func Sanitize(address uint32) uint32 {
	return (address & ^ADDRESS_TAG_MASK) | ADDRESS_BASE
}

// Len returns the number of populated entries.
func (bt *Backtrace) Len() int {
	return bt.count
}

// Empty is true if no return address was collected.
func (bt *Backtrace) Empty() bool {
	return bt.count == 0
}

// Full is true if the walk exhausted the capacity.
func (bt *Backtrace) Full() bool {
	return bt.count == MAX_BACKTRACE_ADDRESSES
}

// At returns the n'th return address, if present.
func (bt *Backtrace) At(n int) (address uint32, ok bool) {
	if n < 0 || n >= bt.count {
		return
	}

	return bt.address[n], true
}

// All iterates over the populated entries.
func (bt *Backtrace) All() iter.Seq2[int, uint32] {
	return func(yield func(n int, address uint32) bool) {
		for n := range bt.count {
			if !yield(n, bt.address[n]) {
				return
			}
		}
	}
}

// Addresses returns a copy of the populated entries.
func (bt *Backtrace) Addresses() (addresses []uint32) {
	addresses = make([]uint32, bt.count)
	copy(addresses, bt.address[:bt.count])
	return
}

// push appends an address, returning false once the capacity is exhausted.
func (bt *Backtrace) push(address uint32) bool {
	bt.address[bt.count] = address
	bt.count++
	return bt.count < MAX_BACKTRACE_ADDRESSES
}
