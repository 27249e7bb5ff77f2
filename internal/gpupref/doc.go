// Package gpupref asks the operating system to run the current process on the
// high-performance graphics adapter.
//
// The hint is advisory and best effort. It must be applied before any window
// or rendering context exists:
//
//	gpupref.ApplyPlatform(os.Stderr)
//	gui.Run(cfg.Window)
//
// On Windows the platform provider resolves SetProcessDefaultGpuPreference
// from gdi32.dll at runtime. On every other target ApplyPlatform is empty and
// the provider reports NotApplicable, so the loader code and the symbol names
// are not linked in.
//
// Failures never reach the caller. Each one produces a single line prefixed
// with "[GPU]" on the writer passed to Apply.
package gpupref
