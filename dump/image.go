// Package dump models a fault capture on the host: the register snapshot of
// the trap frame, plus the memory segments copied off the target.
package dump

import (
	"cmp"
	"encoding/binary"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/xbacktrace/backtrace"
	"github.com/ezrec/xbacktrace/regs"
)

// Segment is a contiguous block of target memory.
type Segment struct {
	Base uint32
	Data []byte
}

// End returns the address one past the end of the segment.
func (seg *Segment) End() uint64 {
	return uint64(seg.Base) + uint64(len(seg.Data))
}

// Contains returns true if length bytes at addr are all in the segment.
func (seg *Segment) Contains(addr uint32, length int) bool {
	return addr >= seg.Base && uint64(addr)+uint64(length) <= seg.End()
}

// Image is a fault capture.
type Image struct {
	Verbose bool // If set, log reads of unmapped memory.

	Context regs.Context // Register snapshot.

	segments []Segment // Sorted by base address.
}

var _ backtrace.Memory = (*Image)(nil)

// AddSegment adds a block of memory to the image. Segments may not overlap.
func (img *Image) AddSegment(base uint32, data []byte) (err error) {
	seg := Segment{Base: base, Data: data}
	if seg.End() > 1<<32 {
		err = ErrSegmentRange
		return
	}

	n, _ := slices.BinarySearchFunc(img.segments, base, func(s Segment, base uint32) int {
		return cmp.Compare(s.Base, base)
	})

	if n > 0 && img.segments[n-1].End() > uint64(base) {
		err = ErrSegmentOverlap
		return
	}
	if n < len(img.segments) && seg.End() > uint64(img.segments[n].Base) {
		err = ErrSegmentOverlap
		return
	}

	img.segments = slices.Insert(img.segments, n, seg)

	return
}

// Segments iterates over the segments, in address order.
func (img *Image) Segments() iter.Seq[Segment] {
	return slices.Values(img.segments)
}

// segment finds the segment holding length bytes at addr.
func (img *Image) segment(addr uint32, length int) (seg *Segment, ok bool) {
	for n := range img.segments {
		if img.segments[n].Contains(addr, length) {
			return &img.segments[n], true
		}
	}
	return
}

// ReadWord reads a little-endian word. Unmapped memory reads as zero.
func (img *Image) ReadWord(addr uint32) (value uint32) {
	seg, ok := img.segment(addr, 4)
	if !ok {
		if img.Verbose {
			log.Printf("dump: read 0x%08x unmapped", addr)
		}
		return
	}

	value = binary.LittleEndian.Uint32(seg.Data[addr-seg.Base:])
	if img.Verbose {
		log.Printf("dump: read 0x%08x = 0x%08x", addr, value)
	}

	return
}

// WriteWord stores a little-endian word into an existing segment.
func (img *Image) WriteWord(addr uint32, value uint32) (err error) {
	seg, ok := img.segment(addr, 4)
	if !ok {
		err = ErrUnmapped(addr)
		return
	}

	binary.LittleEndian.PutUint32(seg.Data[addr-seg.Base:], value)

	return
}
