//go:build linux

package gaps

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// detectSystemMemory reads total and available memory from /proc/meminfo
func detectSystemMemory() (total int64, available int64) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	kb := make(map[string]int64)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		kb[strings.TrimSuffix(fields[0], ":")] = v
	}

	total = kb["MemTotal"] * 1024
	available, ok := kb["MemAvailable"]
	if !ok {
		// kernels before 3.14
		available = kb["MemFree"] + kb["Buffers"] + kb["Cached"]
	}
	return total, available * 1024
}
