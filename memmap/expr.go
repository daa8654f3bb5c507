package memmap

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Expr is a plausibility predicate written as a Starlark expression over
// `addr`, ie `0x3ffae000 <= addr and addr < 0x40000000`.
//
// Expr is not safe for concurrent use.
type Expr struct {
	Source string

	thread  starlark.Thread
	program *starlark.Program
	builtin starlark.StringDict
}

// Compile an expression. Syntax errors and unknown names are reported here;
// failures while evaluating are left to Contains.
func Compile(source string) (expr *Expr, err error) {
	expr = &Expr{
		Source:  source,
		builtin: starlark.StringDict{},
	}

	for name, m := range chips {
		expr.builtin[name] = starlark.NewBuiltin(name, m.builtin)
	}

	predeclared := func(name string) bool {
		_, ok := expr.builtin[name]
		return ok || name == "addr"
	}

	opts := syntax.FileOptions{}
	prog := "rc=" + source + "\n"
	_, expr.program, err = starlark.SourceProgramOptions(&opts, "memmap", prog, predeclared)
	if err != nil {
		expr = nil
		return
	}

	return
}

// eval runs the expression for a single address.
func (expr *Expr) eval(addr uint32) (ok bool, err error) {
	pred := starlark.StringDict{
		"addr": starlark.MakeUint(uint(addr)),
	}
	for name, fn := range expr.builtin {
		pred[name] = fn
	}

	dict, err := expr.program.Init(&expr.thread, pred)
	if err != nil {
		return
	}

	st_rc, found := dict["rc"]
	if !found {
		err = ErrExpr(expr.Source)
		return
	}

	st_bool, found := st_rc.(starlark.Bool)
	if !found {
		err = ErrExpr(expr.Source)
		return
	}

	ok = bool(st_bool)
	return
}

// Contains evaluates the expression. Evaluation errors, and results that
// are not a bool, are implausible.
// A method value of Contains is a backtrace.Predicate.
func (expr *Expr) Contains(addr uint32) bool {
	ok, err := expr.eval(addr)
	return err == nil && ok
}

// builtin exposes a map to expressions as `esp32(addr)`.
func (m *Map) builtin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr starlark.Int
	err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return nil, err
	}

	value, ok := addr.Uint64()
	if !ok || value > 0xffffffff {
		return starlark.False, nil
	}

	return starlark.Bool(m.Contains(uint32(value))), nil
}
