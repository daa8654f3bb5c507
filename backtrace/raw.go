package backtrace

import (
	"sync/atomic"
	"unsafe"
)

// Raw reads the memory of the running target directly.
//
// Raw is only meaningful when executing on the target itself, from the
// exception or panic handler. Any address that passes the walker's Predicate
// but is not mapped will fault.
type Raw struct{}

var _ Memory = Raw{}

// ReadWord performs a single 32-bit load that the compiler cannot elide.
//
// This is the only place an integer address becomes a pointer; go vet's
// unsafeptr check flags the conversion below, and that is expected.
//
//go:nosplit
func (Raw) ReadWord(addr uint32) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
}
