//go:build windows

package gpupref

import (
	"io"

	"golang.org/x/sys/windows"
)

const (
	systemModule = "gdi32.dll"
	systemSymbol = "SetProcessDefaultGpuPreference"
)

type systemProvider struct {
	module string
	symbol string
}

func newSystemProvider(module, symbol string) *systemProvider {
	return &systemProvider{module: module, symbol: symbol}
}

// Platform returns the gdi32-backed provider.
func Platform() Provider {
	return newSystemProvider(systemModule, systemSymbol)
}

// ApplyPlatform applies the hint through the gdi32-backed provider.
func ApplyPlatform(w io.Writer) {
	Apply(Platform(), w)
}

// Resolve loads the module from System32 only. The handle is never released;
// gdi32 stays mapped for the life of the process anyway.
func (s *systemProvider) Resolve() Capability {
	c := Capability{Module: s.module, Symbol: s.symbol}

	dll := windows.NewLazySystemDLL(s.module)
	if err := dll.Load(); err != nil {
		c.Status, c.Err = ModuleMissing, err
		return c
	}

	proc := dll.NewProc(s.symbol)
	if err := proc.Find(); err != nil {
		c.Status, c.Err = SymbolMissing, err
		return c
	}

	// BOOL WINAPI SetProcessDefaultGpuPreference(GPU_PREFERENCE). Only the
	// exported name is checked; the signature is taken on trust.
	c.Status = Available
	c.Set = func(p Preference) bool {
		ret, _, _ := proc.Call(uintptr(p))
		return uint32(ret) != 0
	}
	return c
}
