// Package stats samples the system metrics shown on the panels.
//
// System implements Source on top of gopsutil and the raspberry pi firmware
// tool vcgencmd. Failures are returned to the caller which decides on
// placeholders; nothing in here keeps state except CPU.
package stats

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Source provides raw samples.
type Source interface {
	Memory(ctx context.Context) (MemoryStats, error)
	CPUTimes(ctx context.Context) (cpu.TimesStat, error)
	Temperature(ctx context.Context) (float64, error)
	IPAddress(ctx context.Context) (iface byte, addr string)
	MemorySplit(ctx context.Context) string
	FileSystem(ctx context.Context, path string) (FileSystemStats, error)
}

// System reads the local machine.
type System struct{}

var _ Source = System{}

// TimeString formats the time of day as shown on the info panel.
func TimeString(now time.Time) string { return now.Local().Format(time.TimeOnly) }
