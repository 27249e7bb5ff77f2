//go:build !windows

package gpupref

import "io"

type noopProvider struct{}

// Platform returns a provider that always reports NotApplicable.
func Platform() Provider {
	return noopProvider{}
}

// ApplyPlatform does nothing outside Windows.
func ApplyPlatform(io.Writer) {}

func (noopProvider) Resolve() Capability {
	return Capability{Status: NotApplicable}
}
