package search

import (
	"fmt"
	"runtime"

	"github.com/bobokapi/MRPrimes/utils"

	"golang.org/x/sys/unix"
)

// pinWorker binds the calling goroutine's OS thread to one CPU so a long
// search does not migrate between cores. Workers beyond the core count wrap
// around and time-share.
func pinWorker(id int, debug bool) {
	runtime.LockOSThread()
	cpu := id % runtime.NumCPU()
	cpuset := unix.CPUSet{}
	cpuset.Set(cpu)
	err := unix.SchedSetaffinity(0, &cpuset)
	if err != nil {
		utils.LogMessage(fmt.Sprintf("Failed to set CPU affinity for worker %d: %v (may require root privileges)", id, err), true)
	} else if debug {
		utils.LogMessage(fmt.Sprintf("Worker %d pinned to CPU %d", id, cpu), true)
	}
}
