//go:build !darwin && !linux

package gaps

import "runtime"

// detectOptimalWorkers fallback for other operating systems
func detectOptimalWorkers() int {
	return runtime.NumCPU()
}
