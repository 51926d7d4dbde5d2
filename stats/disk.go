package stats

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/srlehn/fbstat/internal/errors"
)

const gigabyte = 1 << 30

// FileSystemStats are in bytes.
type FileSystemStats struct {
	Total     uint64
	Available uint64
}

func (s FileSystemStats) UsedPercent() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Total-min(s.Available, s.Total)) / float64(s.Total)
}

// String formats as "<available>GB / <total>GB (<used>%)".
func (s FileSystemStats) String() string {
	return fmt.Sprintf(`%.02fGB / %.02fGB (%.02f%%)`,
		float64(s.Available)/gigabyte, float64(s.Total)/gigabyte, s.UsedPercent())
}

func (System) FileSystem(ctx context.Context, path string) (FileSystemStats, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return FileSystemStats{}, errors.New(err)
	}
	return FileSystemStats{Total: u.Total, Available: u.Free}, nil
}
