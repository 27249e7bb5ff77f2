package gpupref

import "fmt"

// Preference is a GPU_PREFERENCE value as defined by the Windows API.
// The numeric values are part of the OS contract.
type Preference int32

const HighPerformance Preference = 2

func (p Preference) String() string {
	if p == HighPerformance {
		return "high-performance"
	}
	return fmt.Sprintf("preference(%d)", int32(p))
}
