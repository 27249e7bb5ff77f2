// Package startup fixes the order of process start: the GPU hint first, then
// the application, each exactly once.
package startup

// Sequence describes one process start. Hint may be nil.
type Sequence struct {
	Hint func()
	Run  func() error
}

// Launch runs the sequence. The application runs even when Hint panics,
// and its error is returned unchanged.
func (s Sequence) Launch() error {
	if s.Hint != nil {
		runHint(s.Hint)
	}
	if s.Run == nil {
		return nil
	}
	return s.Run()
}

// Launch is shorthand for Sequence{Hint: hint, Run: run}.Launch().
func Launch(hint func(), run func() error) error {
	return Sequence{Hint: hint, Run: run}.Launch()
}

func runHint(hint func()) {
	defer func() { _ = recover() }()
	hint()
}
