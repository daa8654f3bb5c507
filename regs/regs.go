// Package regs models the Xtensa register file as saved by the trap entry
// sequence.
package regs

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
	"unsafe"

	"github.com/ezrec/xbacktrace/cause"
)

const (
	CONTEXT_WORDS = 54                // Registers in a Context.
	CONTEXT_SIZE  = CONTEXT_WORDS * 4 // Size of a Context, in bytes.
)

// Register is the index of a register in the saved Context.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_PC        = Register(0)  // PC
	REG_PS        = Register(1)  // PS
	REG_A0        = Register(2)  // A0
	REG_A1        = Register(3)  // A1
	REG_A2        = Register(4)  // A2
	REG_A3        = Register(5)  // A3
	REG_A4        = Register(6)  // A4
	REG_A5        = Register(7)  // A5
	REG_A6        = Register(8)  // A6
	REG_A7        = Register(9)  // A7
	REG_A8        = Register(10) // A8
	REG_A9        = Register(11) // A9
	REG_A10       = Register(12) // A10
	REG_A11       = Register(13) // A11
	REG_A12       = Register(14) // A12
	REG_A13       = Register(15) // A13
	REG_A14       = Register(16) // A14
	REG_A15       = Register(17) // A15
	REG_SAR       = Register(18) // SAR
	REG_EXCCAUSE  = Register(19) // EXCCAUSE
	REG_EXCVADDR  = Register(20) // EXCVADDR
	REG_LBEG      = Register(21) // LBEG
	REG_LEND      = Register(22) // LEND
	REG_LCOUNT    = Register(23) // LCOUNT
	REG_THREADPTR = Register(24) // THREADPTR
	REG_SCOMPARE1 = Register(25) // SCOMPARE1
	REG_BR        = Register(26) // BR
	REG_ACCLO     = Register(27) // ACCLO
	REG_ACCHI     = Register(28) // ACCHI
	REG_M0        = Register(29) // M0
	REG_M1        = Register(30) // M1
	REG_M2        = Register(31) // M2
	REG_M3        = Register(32) // M3
	REG_F64R_LO   = Register(33) // F64R_LO
	REG_F64R_HI   = Register(34) // F64R_HI
	REG_F64S      = Register(35) // F64S
	REG_FCR       = Register(36) // FCR
	REG_FSR       = Register(37) // FSR
	REG_F0        = Register(38) // F0
	REG_F1        = Register(39) // F1
	REG_F2        = Register(40) // F2
	REG_F3        = Register(41) // F3
	REG_F4        = Register(42) // F4
	REG_F5        = Register(43) // F5
	REG_F6        = Register(44) // F6
	REG_F7        = Register(45) // F7
	REG_F8        = Register(46) // F8
	REG_F9        = Register(47) // F9
	REG_F10       = Register(48) // F10
	REG_F11       = Register(49) // F11
	REG_F12       = Register(50) // F12
	REG_F13       = Register(51) // F13
	REG_F14       = Register(52) // F14
	REG_F15       = Register(53) // F15
)

// Context is the register file saved by the trap entry sequence.
// The field order is the in-memory layout of the trap frame.
type Context struct {
	PC        uint32
	PS        uint32
	A0        uint32
	A1        uint32
	A2        uint32
	A3        uint32
	A4        uint32
	A5        uint32
	A6        uint32
	A7        uint32
	A8        uint32
	A9        uint32
	A10       uint32
	A11       uint32
	A12       uint32
	A13       uint32
	A14       uint32
	A15       uint32
	SAR       uint32
	EXCCAUSE  uint32
	EXCVADDR  uint32
	LBEG      uint32
	LEND      uint32
	LCOUNT    uint32
	THREADPTR uint32
	SCOMPARE1 uint32
	BR        uint32
	ACCLO     uint32
	ACCHI     uint32
	M0        uint32
	M1        uint32
	M2        uint32
	M3        uint32
	F64R_LO   uint32
	F64R_HI   uint32
	F64S      uint32
	FCR       uint32
	FSR       uint32
	F0        uint32
	F1        uint32
	F2        uint32
	F3        uint32
	F4        uint32
	F5        uint32
	F6        uint32
	F7        uint32
	F8        uint32
	F9        uint32
	F10       uint32
	F11       uint32
	F12       uint32
	F13       uint32
	F14       uint32
	F15       uint32
}

func _() {
	var x [1]struct{}
	_ = x[unsafe.Sizeof(Context{})-CONTEXT_SIZE]
}

// FromWords builds a Context from the raw trap frame words.
func FromWords(words [CONTEXT_WORDS]uint32) (ctx Context) {
	ctx = *(*Context)(unsafe.Pointer(&words))
	return
}

// Words returns the raw trap frame words.
func (ctx *Context) Words() [CONTEXT_WORDS]uint32 {
	return *(*[CONTEXT_WORDS]uint32)(unsafe.Pointer(ctx))
}

// Get returns the value of a single register.
func (ctx *Context) Get(reg Register) uint32 {
	if reg < 0 || reg >= CONTEXT_WORDS {
		return 0
	}
	words := ctx.Words()
	return words[reg]
}

// Cause decodes the EXCCAUSE register.
func (ctx *Context) Cause() cause.Cause {
	return cause.Decode(ctx.EXCCAUSE)
}

// Registers iterates over all registers, in trap frame order.
func (ctx *Context) Registers() iter.Seq2[Register, uint32] {
	return func(yield func(reg Register, value uint32) bool) {
		for reg, value := range ctx.Words() {
			if !yield(Register(reg), value) {
				return
			}
		}
	}
}

// MarshalBinary encodes the Context as little-endian words.
func (ctx *Context) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, CONTEXT_SIZE)
	for _, value := range ctx.Words() {
		data = binary.LittleEndian.AppendUint32(data, value)
	}
	return
}

// UnmarshalBinary decodes a Context from little-endian words.
func (ctx *Context) UnmarshalBinary(data []byte) (err error) {
	if len(data) != CONTEXT_SIZE {
		err = &ErrContextSize{Size: len(data)}
		return
	}

	var words [CONTEXT_WORDS]uint32
	for n := range words {
		words[n] = binary.LittleEndian.Uint32(data[n*4:])
	}
	*ctx = FromWords(words)

	return
}

// Rendering layout, one slice per output line.
var layout = [][]Register{
	{REG_PC, REG_PS},
	{REG_A0, REG_A1, REG_A2, REG_A3, REG_A4},
	{REG_A5, REG_A6, REG_A7, REG_A8, REG_A9},
	{REG_A10, REG_A11, REG_A12, REG_A13, REG_A14},
	{REG_A15},
	{REG_SAR},
	{REG_EXCCAUSE, REG_EXCVADDR},
	{REG_LBEG, REG_LEND, REG_LCOUNT},
	{REG_THREADPTR},
	{REG_SCOMPARE1},
	{REG_BR},
	{REG_ACCLO, REG_ACCHI},
	{REG_M0, REG_M1, REG_M2, REG_M3},
	{REG_F64R_LO, REG_F64R_HI, REG_F64S},
	{REG_FCR, REG_FSR},
	{REG_F0, REG_F1, REG_F2, REG_F3, REG_F4},
	{REG_F5, REG_F6, REG_F7, REG_F8, REG_F9},
	{REG_F10, REG_F11, REG_F12, REG_F13, REG_F14},
	{REG_F15},
}

const columnWidth = 20

// String renders the Context as a fixed multi-line register dump.
func (ctx *Context) String() string {
	var text strings.Builder

	words := ctx.Words()

	text.WriteString("Context\n")
	for _, line := range layout {
		for n, reg := range line {
			var cell string
			if reg == REG_SAR {
				// SAR is printed without a radix prefix.
				cell = fmt.Sprintf("%v=%08x", reg, words[reg])
			} else {
				cell = fmt.Sprintf("%v=0x%08x", reg, words[reg])
			}
			if n < len(line)-1 {
				cell = fmt.Sprintf("%-*s", columnWidth, cell)
			}
			text.WriteString(cell)
		}
		text.WriteString("\n")
	}

	return text.String()
}
