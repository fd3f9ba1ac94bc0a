package systeminfo

import (
	"fmt"
	"path/filepath"
	"runtime"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gdisk "github.com/shirou/gopsutil/v4/disk"
	gmem "github.com/shirou/gopsutil/v4/mem"
)

// Info summarizes the resources a search run will lean on: CPU for the
// modular exponentiation, memory for the bignum arithmetic, and free space
// where the output file lives.
type Info struct {
	CPUInfo    string
	MemoryInfo string
	DiskInfo   string
}

// Collect gathers CPU, memory, and output-disk information. outputPath
// locates the filesystem whose free space is reported.
func Collect(outputPath string) Info {
	var info Info

	cpuInfo, err := gcpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		info.CPUInfo = "CPU Info: Unable to retrieve CPU information"
	} else {
		totalCores, _ := gcpu.Counts(true)
		info.CPUInfo = fmt.Sprintf("CPU Info: Model: %s, Cores: %d, Frequency: %.2f MHz (GOMAXPROCS: %d)",
			cpuInfo[0].ModelName, totalCores, cpuInfo[0].Mhz, runtime.GOMAXPROCS(0))
	}

	vm, err := gmem.VirtualMemory()
	if err != nil {
		info.MemoryInfo = "Memory Info: Unable to retrieve memory information"
	} else {
		info.MemoryInfo = fmt.Sprintf("Memory Info: %.1f GB available of %.1f GB (%.1f%% used)",
			float64(vm.Available)/1e9, float64(vm.Total)/1e9, vm.UsedPercent)
	}

	dir := filepath.Dir(outputPath)
	if dir == "" {
		dir = "."
	}
	usage, err := gdisk.Usage(dir)
	if err != nil {
		info.DiskInfo = fmt.Sprintf("Disk Info: Unable to retrieve usage for %s", dir)
	} else {
		info.DiskInfo = fmt.Sprintf("Disk Info: %.1f GB free at %s", float64(usage.Free)/1e9, dir)
	}

	return info
}

// Print writes the collected information to stdout.
func (i Info) Print() {
	fmt.Println(i.CPUInfo)
	fmt.Println(i.MemoryInfo)
	fmt.Println(i.DiskInfo)
}
