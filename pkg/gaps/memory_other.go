//go:build !darwin && !linux

package gaps

// detectSystemMemory is unknown on other systems
func detectSystemMemory() (total int64, available int64) {
	return 0, 0
}
