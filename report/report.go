// Package report assembles the diagnostics of a fault, and renders them for
// a console or for tooling.
package report

import (
	"github.com/ezrec/xbacktrace/backtrace"
	"github.com/ezrec/xbacktrace/cause"
	"github.com/ezrec/xbacktrace/regs"
)

// Kind is the trigger of a report.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_EXCEPTION = Kind(0) // exception
	KIND_PANIC     = Kind(1) // panic
)

const (
	EXCEPTION_SUPPRESS = 0 // Frames hidden from an exception backtrace.
	PANIC_SUPPRESS     = 1 // Frames hidden from a panic backtrace.
)

// Report is the diagnostics of a single fault.
type Report struct {
	Kind      Kind
	Message   string              // Panic message, if any.
	Cause     cause.Cause         // Decoded EXCCAUSE, NONE for panics.
	Context   *regs.Context       // Register snapshot, nil for panics.
	Backtrace backtrace.Backtrace // Call chain.
}

// Exception reports a CPU exception. The walk starts at the stack pointer
// (A1) saved in the trap frame.
func Exception(ctx *regs.Context, walker *backtrace.Walker) (rpt Report) {
	rpt = Report{
		Kind:      KIND_EXCEPTION,
		Cause:     ctx.Cause(),
		Context:   ctx,
		Backtrace: walker.Walk(ctx.A1, EXCEPTION_SUPPRESS),
	}

	return
}

// Panic reports a software panic, walking from the stack pointer of the
// panic handler. The handler's own frame is hidden.
func Panic(message string, sp uint32, walker *backtrace.Walker) (rpt Report) {
	rpt = Report{
		Kind:      KIND_PANIC,
		Message:   message,
		Cause:     cause.NONE,
		Backtrace: walker.Walk(sp, PANIC_SUPPRESS),
	}

	return
}
