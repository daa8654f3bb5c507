package backtrace

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// Package level data of a non-PIE test binary sits below 4GiB.
var testRawWords = [2]uint32{0xcafef00d, 0x400d1234}

var testRawStack [64]uint32

func TestRaw_ReadWord(t *testing.T) {
	assert := assert.New(t)

	addr := uintptr(unsafe.Pointer(&testRawWords[0]))
	if uint64(addr) > 0xffffffff-8 {
		t.Skipf("test data at 0x%x is not 32-bit addressable", addr)
	}

	assert.Equal(uint32(0xcafef00d), Raw{}.ReadWord(uint32(addr)))
	assert.Equal(uint32(0x400d1234), Raw{}.ReadWord(uint32(addr)+4))

	testRawWords[0] = 0x12345678
	assert.Equal(uint32(0x12345678), Raw{}.ReadWord(uint32(addr)))
}

func TestRaw_Walk(t *testing.T) {
	assert := assert.New(t)

	base := uintptr(unsafe.Pointer(&testRawStack[0]))
	if uint64(base) > 0xffffffff-uint64(len(testRawStack)*4) {
		t.Skipf("test stack at 0x%x is not 32-bit addressable", base)
	}
	lo := uint32(base)
	hi := lo + uint32(len(testRawStack)*4)

	// Two frames, then the end of the chain.
	testRawStack[12] = 0x800d1000
	testRawStack[13] = lo + 0x80
	testRawStack[28] = 0x800d2000
	testRawStack[29] = lo + 0xc0
	testRawStack[44] = 0

	valid := func(addr uint32) bool { return addr >= lo && addr <= hi }
	bt := NewWalker(Raw{}, valid).Walk(lo+0x40, 0)
	assert.Equal([]uint32{0x400d1000, 0x400d2000}, bt.Addresses())
	assert.Equal(STOP_ZERO, bt.Stop)
}
