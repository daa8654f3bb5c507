package backtrace

// Memory is the boundary for reads of target memory of unknown integrity.
// The walker only calls ReadWord on addresses derived from a frame pointer
// that has been accepted by the walker's Predicate, or on the starting stack
// pointer.
type Memory interface {
	// ReadWord reads a 32-bit word at the address.
	ReadWord(addr uint32) uint32
}

// Predicate reports whether an address is plausibly mapped RAM.
type Predicate func(addr uint32) bool

// Walker walks the frame pointer chain.
type Walker struct {
	Memory Memory    // Source of stack memory.
	Valid  Predicate // RAM plausibility check for frame pointers.
}

// NewWalker creates a walker over a memory and RAM predicate.
// On the target itself, memory is Raw{}.
func NewWalker(memory Memory, valid Predicate) *Walker {
	return &Walker{
		Memory: memory,
		Valid:  valid,
	}
}

// Walk collects the return addresses of the frames below sp, innermost
// first. The first suppress frames that would otherwise be recorded are
// skipped.
//
// The walk ends when a return address repeats the previous one, when the
// saved return address is zero, when the next frame pointer is implausible or
// zero, or when MAX_BACKTRACE_ADDRESSES entries have been collected.
func (w *Walker) Walk(sp uint32, suppress int) (bt Backtrace) {
	fp := sp
	previous := uint32(0)

	for {
		raw := w.Memory.ReadWord(fp - RETURN_ADDRESS_OFFSET)
		address := Sanitize(raw)
		fp = w.Memory.ReadWord(fp - FRAME_POINTER_OFFSET)

		if address == previous {
			bt.Stop = STOP_REPEAT
			return
		}
		previous = address

		// Sanitize always sets the base bits, so the end-of-chain marker
		// is checked on the saved value.
		if raw == 0 {
			bt.Stop = STOP_ZERO
			return
		}

		if !w.Valid(fp) {
			bt.Stop = STOP_INVALID_FP
			return
		}

		if fp == 0 {
			bt.Stop = STOP_NULL_FP
			return
		}

		if suppress > 0 {
			suppress--
			continue
		}

		if !bt.push(address) {
			bt.Stop = STOP_FULL
			return
		}
	}
}
