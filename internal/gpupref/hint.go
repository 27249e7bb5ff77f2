package gpupref

import (
	"fmt"
	"io"
)

const diagTag = "[GPU]"

// Apply requests the high-performance GPU for the current process.
// It never fails; problems are written to w as single diagnostic lines.
func Apply(p Provider, w io.Writer) {
	_ = Attempt(p, w)
}

// Attempt is Apply with the terminal state exposed. It returns Invoked once
// the entry point was called (whatever it answered), Abandoned when
// resolution stopped early, and Unattempted when p is not applicable.
func Attempt(p Provider, w io.Writer) State {
	if p == nil {
		return Unattempted
	}

	c := p.Resolve()
	switch c.Status {
	case NotApplicable:
		return Unattempted
	case ModuleMissing:
		diag(w, "%s not available; skipping GPU preference hint.", c.Module)
		return Abandoned
	case SymbolMissing:
		diag(w, "%s not exported; skipping hint.", c.Symbol)
		return Abandoned
	case Available:
	default:
		return Abandoned
	}

	if c.Set == nil {
		diag(w, "%s not exported; skipping hint.", c.Symbol)
		return Abandoned
	}

	if !c.Set(HighPerformance) {
		diag(w, "Failed to hint %s GPU preference (continuing anyway).", HighPerformance)
	}
	return Invoked
}

// diag ignores write errors: a GUI-subsystem process may have no stderr.
func diag(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, diagTag+" "+format+"\n", args...)
}
