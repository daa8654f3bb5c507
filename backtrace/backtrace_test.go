package backtrace

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testRamStart = uint32(0x3ffb0000)
	testRamEnd   = uint32(0x40000000)
	testStack    = uint32(0x3ffb8000)
)

type testMemory struct {
	words map[uint32]uint32
	reads int
}

func (mem *testMemory) ReadWord(addr uint32) uint32 {
	mem.reads++
	return mem.words[addr]
}

func testValid(addr uint32) bool {
	return addr >= testRamStart && addr < testRamEnd
}

// testChain lays out n well formed frames above sp, terminated by a zero
// return address.
func testChain(sp uint32, n int) (mem *testMemory, want []uint32) {
	mem = &testMemory{words: map[uint32]uint32{}}
	want = []uint32{}

	fp := sp
	for i := range n {
		next := fp + 0x40
		// call8 windowed return address
		ra := 0x800d0000 + uint32(i)*0x10
		mem.words[fp-RETURN_ADDRESS_OFFSET] = ra
		mem.words[fp-FRAME_POINTER_OFFSET] = next
		want = append(want, Sanitize(ra))
		fp = next
	}
	mem.words[fp-RETURN_ADDRESS_OFFSET] = 0
	mem.words[fp-FRAME_POINTER_OFFSET] = 0

	return
}

func TestSanitize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0x400d1234), Sanitize(0x800d1234))
	assert.Equal(uint32(0x400d1234), Sanitize(0xc00d1234))
	assert.Equal(uint32(0x400d1234), Sanitize(0x400d1234))
	assert.Equal(uint32(0x400d1234), Sanitize(0x000d1234))
	assert.Equal(uint32(0x40000000), Sanitize(0))

	for _, addr := range []uint32{0, 1, 0x3fffffff, 0x400d1234, 0x800d1234, 0xffffffff} {
		assert.Equal(Sanitize(addr), Sanitize(Sanitize(addr)), "0x%08x", addr)
		for tag := range uint32(4) {
			alias := (addr &^ ADDRESS_TAG_MASK) | (tag << 30)
			assert.Equal(Sanitize(addr), Sanitize(alias), "0x%08x", alias)
		}
	}
}

func TestBacktrace_Empty(t *testing.T) {
	assert := assert.New(t)

	bt := Backtrace{}
	assert.True(bt.Empty())
	assert.False(bt.Full())
	assert.Equal(0, bt.Len())
	assert.Equal(STOP_NONE, bt.Stop)
	assert.Equal([]uint32{}, bt.Addresses())

	_, ok := bt.At(0)
	assert.False(ok)
}

func TestWalk(t *testing.T) {
	assert := assert.New(t)

	for n := range 5 {
		mem, want := testChain(testStack, n)
		walker := NewWalker(mem, testValid)

		bt := walker.Walk(testStack, 0)
		assert.Equal(n, bt.Len())
		assert.Equal(want, bt.Addresses())
		assert.Equal(STOP_ZERO, bt.Stop)

		// Dense prefix, no entries past Len()
		for i := range MAX_BACKTRACE_ADDRESSES {
			address, ok := bt.At(i)
			assert.Equal(i < n, ok)
			if ok {
				assert.Equal(want[i], address)
			}
		}
	}
}

func TestWalk_All(t *testing.T) {
	assert := assert.New(t)

	mem, want := testChain(testStack, 4)
	bt := NewWalker(mem, testValid).Walk(testStack, 0)

	got := []uint32{}
	for n, address := range bt.All() {
		assert.Equal(len(got), n)
		got = append(got, address)
	}
	assert.Equal(want, got)
}

func TestWalk_Suppress(t *testing.T) {
	assert := assert.New(t)

	const frames = 6

	for suppress := range frames + 3 {
		mem, want := testChain(testStack, frames)
		bt := NewWalker(mem, testValid).Walk(testStack, suppress)

		if suppress >= frames {
			assert.True(bt.Empty(), "suppress %d", suppress)
		} else {
			assert.Equal(want[suppress:], bt.Addresses(), "suppress %d", suppress)
		}
		assert.Equal(STOP_ZERO, bt.Stop)
	}
}

func TestWalk_Suppress_Negative(t *testing.T) {
	assert := assert.New(t)

	mem, want := testChain(testStack, 3)
	bt := NewWalker(mem, testValid).Walk(testStack, -2)
	assert.Equal(want, bt.Addresses())
}

func TestWalk_Repeat(t *testing.T) {
	assert := assert.New(t)

	mem, want := testChain(testStack, 5)

	// Third frame returns to the same place as the second, through
	// a differently tagged alias.
	fp := testStack + 2*0x40
	mem.words[fp-RETURN_ADDRESS_OFFSET] = (want[1] &^ ADDRESS_TAG_MASK) | 0xc0000000

	bt := NewWalker(mem, testValid).Walk(testStack, 0)
	assert.Equal(want[:2], bt.Addresses())
	assert.Equal(STOP_REPEAT, bt.Stop)
}

func TestWalk_SelfReference(t *testing.T) {
	assert := assert.New(t)

	mem := &testMemory{words: map[uint32]uint32{
		testStack - RETURN_ADDRESS_OFFSET: 0x800d0100,
		testStack - FRAME_POINTER_OFFSET:  testStack,
	}}

	bt := NewWalker(mem, testValid).Walk(testStack, 0)
	assert.Equal([]uint32{0x400d0100}, bt.Addresses())
	assert.Equal(STOP_REPEAT, bt.Stop)
	assert.Equal(4, mem.reads)
}

func TestWalk_InvalidFramePointer(t *testing.T) {
	assert := assert.New(t)

	mem, want := testChain(testStack, 5)

	// Third frame points outside of RAM.
	fp := testStack + 2*0x40
	mem.words[fp-FRAME_POINTER_OFFSET] = 0x20000000

	bt := NewWalker(mem, testValid).Walk(testStack, 0)
	assert.Equal(want[:2], bt.Addresses())
	assert.Equal(STOP_INVALID_FP, bt.Stop)
	assert.Equal(6, mem.reads)
}

func TestWalk_NullFramePointer(t *testing.T) {
	assert := assert.New(t)

	mem, want := testChain(testStack, 5)

	fp := testStack + 3*0x40
	mem.words[fp-FRAME_POINTER_OFFSET] = 0

	// Accept everything, so only the null check can stop the walk.
	bt := NewWalker(mem, func(uint32) bool { return true }).Walk(testStack, 0)
	assert.Equal(want[:3], bt.Addresses())
	assert.Equal(STOP_NULL_FP, bt.Stop)

	bt = NewWalker(mem, testValid).Walk(testStack, 0)
	assert.Equal(want[:3], bt.Addresses())
	assert.Equal(STOP_INVALID_FP, bt.Stop)
}

func TestWalk_Capacity(t *testing.T) {
	assert := assert.New(t)

	mem, want := testChain(testStack, 3*MAX_BACKTRACE_ADDRESSES)

	bt := NewWalker(mem, testValid).Walk(testStack, 0)
	assert.True(bt.Full())
	assert.Equal(MAX_BACKTRACE_ADDRESSES, bt.Len())
	assert.Equal(want[:MAX_BACKTRACE_ADDRESSES], bt.Addresses())
	assert.Equal(STOP_FULL, bt.Stop)
	// Two reads per frame, nothing past the last recorded frame.
	assert.Equal(2*MAX_BACKTRACE_ADDRESSES, mem.reads)

	mem, want = testChain(testStack, 3*MAX_BACKTRACE_ADDRESSES)
	bt = NewWalker(mem, testValid).Walk(testStack, 2)
	assert.Equal(want[2:2+MAX_BACKTRACE_ADDRESSES], bt.Addresses())
	assert.Equal(2*(2+MAX_BACKTRACE_ADDRESSES), mem.reads)
}

func TestWalk_Garbage(t *testing.T) {
	assert := assert.New(t)

	mem := &testMemory{words: map[uint32]uint32{}}
	bt := NewWalker(mem, testValid).Walk(testStack, 0)
	assert.True(bt.Empty())
	assert.Equal(STOP_ZERO, bt.Stop)

	bt = NewWalker(mem, testValid).Walk(0, 0)
	assert.True(bt.Empty())
}

type byteMemory struct {
	base  uint32
	data  []byte
	reads int
}

func (mem *byteMemory) ReadWord(addr uint32) uint32 {
	mem.reads++
	offset := addr - mem.base
	if addr < mem.base || uint64(offset)+4 > uint64(len(mem.data)) {
		return 0
	}
	return binary.LittleEndian.Uint32(mem.data[offset:])
}

func FuzzWalk(f *testing.F) {
	f.Add([]byte{}, uint16(0x100), uint8(0))
	f.Add([]byte{0x10, 0x00, 0x0d, 0x80, 0x40, 0x00, 0xfb, 0x3f}, uint16(0x10), uint8(1))

	f.Fuzz(func(t *testing.T, data []byte, sp uint16, suppress uint8) {
		assert := assert.New(t)

		mem := &byteMemory{base: testRamStart, data: data}
		bt := NewWalker(mem, testValid).Walk(testRamStart+uint32(sp), int(suppress))

		assert.LessOrEqual(bt.Len(), MAX_BACKTRACE_ADDRESSES)
		assert.LessOrEqual(mem.reads, 2*(int(suppress)+MAX_BACKTRACE_ADDRESSES+1))
		assert.NotEqual(STOP_NONE, bt.Stop)

		for _, address := range bt.All() {
			assert.Equal(ADDRESS_BASE, address&ADDRESS_TAG_MASK)
		}
	})
}
