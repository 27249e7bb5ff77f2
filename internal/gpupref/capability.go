package gpupref

// Status is the outcome of resolving the preference entry point.
type Status int

const (
	Available Status = iota
	ModuleMissing
	SymbolMissing
	// NotApplicable is reported on targets that have no such entry point.
	NotApplicable
)

func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case ModuleMissing:
		return "module missing"
	case SymbolMissing:
		return "symbol missing"
	case NotApplicable:
		return "not applicable"
	default:
		return "unknown"
	}
}

// SetFunc sets the process default GPU preference and reports whether the
// OS accepted it.
type SetFunc func(Preference) bool

// Capability is a single resolution result. Set is non-nil only when Status
// is Available. It is not meant to be kept past the call that produced it.
type Capability struct {
	Status Status
	Module string
	Symbol string
	Set    SetFunc
	Err    error
}

// Provider resolves the preference entry point. Resolve must not invoke it.
type Provider interface {
	Resolve() Capability
}

// State tracks how far a hint attempt progressed.
type State int

const (
	Unattempted State = iota
	ModuleResolved
	SymbolResolved
	Invoked
	Abandoned
)

func (s State) String() string {
	switch s {
	case Unattempted:
		return "unattempted"
	case ModuleResolved:
		return "module resolved"
	case SymbolResolved:
		return "symbol resolved"
	case Invoked:
		return "invoked"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// State returns the furthest state the resolution reached before any call.
func (c Capability) State() State {
	switch c.Status {
	case Available:
		if c.Set == nil {
			return ModuleResolved
		}
		return SymbolResolved
	case SymbolMissing:
		return ModuleResolved
	default:
		return Unattempted
	}
}
