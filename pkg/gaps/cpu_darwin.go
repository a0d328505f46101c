//go:build darwin

package gaps

import (
	"runtime"
	"syscall"
)

// detectOptimalWorkers prefers the performance cores of Apple Silicon
func detectOptimalWorkers() int {
	if n := sysctlCount("hw.perflevel0.physicalcpu"); n > 0 {
		return n
	}
	if n := sysctlCount("hw.physicalcpu"); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// sysctlCount reads a small little-endian integer sysctl.
// syscall.Sysctl returns the raw bytes, not a decimal string.
func sysctlCount(name string) int {
	raw, err := syscall.Sysctl(name)
	if err != nil || len(raw) == 0 {
		return 0
	}
	n := int(raw[0])
	if len(raw) > 1 {
		n |= int(raw[1]) << 8
	}
	return n
}
