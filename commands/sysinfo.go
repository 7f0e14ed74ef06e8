package commands

import (
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/tabsh/tabsh/core/proc"
)

// SystemProcesses is the live process lister used when a Proc doesn't
// inject its own. Processes that disappear mid-walk are skipped.
func SystemProcesses() ([]proc.ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]proc.ProcessInfo, 0, len(procs))
	for _, pr := range procs {
		name, err := pr.Name()
		if err != nil {
			continue
		}
		info := proc.ProcessInfo{
			PID:     int64(pr.Pid),
			Name:    name,
			Threads: 1,
		}
		if m, err := pr.MemoryInfo(); err == nil && m != nil {
			info.RSS = int64(m.RSS)
		}
		if n, err := pr.NumThreads(); err == nil {
			info.Threads = int64(n)
		}
		out = append(out, info)
	}
	return out, nil
}

// SystemMemory is the live memory lister used when a Proc doesn't inject
// its own.
func SystemMemory() (*proc.MemoryInfo, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}
	return &proc.MemoryInfo{
		Total:     vm.Total,
		Used:      vm.Used,
		Free:      vm.Free,
		Available: vm.Available,
	}, nil
}
