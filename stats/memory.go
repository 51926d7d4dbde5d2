package stats

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/srlehn/fbstat/internal/errors"
)

// MemoryStats are in bytes.
type MemoryStats struct {
	Total   uint64
	Free    uint64
	Buffers uint64
	Cached  uint64
	Used    uint64
}

// NewMemoryStats derives Used as the memory that is neither free, buffers
// nor cache.
func NewMemoryStats(total, free, buffers, cached uint64) MemoryStats {
	m := MemoryStats{Total: total, Free: free, Buffers: buffers, Cached: cached}
	if other := free + buffers + cached; other < total {
		m.Used = total - other
	}
	return m
}

func (System) Memory(ctx context.Context) (MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, errors.New(err)
	}
	return memoryFromVirtual(vm), nil
}

// memoryFromVirtual uses the page cache as /proc/meminfo reports it,
// gopsutil adds the reclaimable slab to Cached.
func memoryFromVirtual(vm *mem.VirtualMemoryStat) MemoryStats {
	if vm == nil {
		return MemoryStats{}
	}
	cached := vm.Cached - min(vm.Sreclaimable, vm.Cached)
	return NewMemoryStats(vm.Total, vm.Free, vm.Buffers, cached)
}
