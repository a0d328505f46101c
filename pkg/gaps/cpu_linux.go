//go:build linux

package gaps

import (
	"bufio"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// detectOptimalWorkers counts performance cores on hybrid CPUs and falls
// back to all logical CPUs
func detectOptimalWorkers() int {
	if n := detectPerfCoresLinux(); n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// detectPerfCoresLinux takes the highest frequency seen for each physical
// core in /proc/cpuinfo and counts the cores within 10% of the mean.
// Returns 0 unless the CPU looks hybrid.
func detectPerfCoresLinux() int {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return 0
	}
	defer file.Close()

	coreFreq := make(map[int]float64)
	coreID, freq := -1, 0.0
	flush := func() {
		if coreID >= 0 && freq > coreFreq[coreID] {
			coreFreq[coreID] = freq
		}
		coreID, freq = -1, 0
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "processor":
			flush()
		case "core id":
			if id, err := strconv.Atoi(value); err == nil {
				coreID = id
			}
		case "cpu MHz":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				freq = f
			}
		}
	}
	flush()

	if len(coreFreq) <= 2 {
		return 0
	}

	var sum float64
	for _, f := range coreFreq {
		sum += f
	}
	avg := sum / float64(len(coreFreq))

	perf := 0
	for _, f := range coreFreq {
		if f >= avg*0.9 {
			perf++
		}
	}
	if perf > 0 && perf < len(coreFreq) {
		return perf
	}
	return 0
}
