package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta summarizes what happened between two snapshots.
type Delta struct {
	AllocatedBytes uint64 // bytes allocated between the snapshots
	GCCycles       uint32 // GC cycles completed between the snapshots
}

// DeltaSince computes the allocation and GC activity between an earlier
// snapshot and now. TotalAlloc is monotonic, so the difference is exact even
// if the GC ran in between.
func (mc *MemoryCollector) DeltaSince(before MemorySnapshot) Delta {
	now := mc.Snapshot()
	return Delta{
		AllocatedBytes: now.TotalAlloc - before.TotalAlloc,
		GCCycles:       now.NumGC - before.NumGC,
	}
}
