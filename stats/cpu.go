package stats

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/srlehn/fbstat/internal/errors"
)

func (System) CPUTimes(ctx context.Context) (cpu.TimesStat, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return cpu.TimesStat{}, errors.New(err)
	}
	if len(times) == 0 {
		return cpu.TimesStat{}, errors.New(`no cpu times`)
	}
	return times[0], nil
}

// CPUSample is the time spent per state between two samples, in seconds.
type CPUSample struct {
	User    float64
	Nice    float64
	System  float64
	Idle    float64
	IOWait  float64
	IRQ     float64
	SoftIRQ float64
	Steal   float64
}

// DiffTimes returns cur - prev. Counters that went backwards count as 0.
func DiffTimes(cur, prev cpu.TimesStat) CPUSample {
	d := func(a, b float64) float64 { return max(a-b, 0) }
	return CPUSample{
		User:    d(cur.User, prev.User),
		Nice:    d(cur.Nice, prev.Nice),
		System:  d(cur.System, prev.System),
		Idle:    d(cur.Idle, prev.Idle),
		IOWait:  d(cur.Iowait, prev.Iowait),
		IRQ:     d(cur.Irq, prev.Irq),
		SoftIRQ: d(cur.Softirq, prev.Softirq),
		Steal:   d(cur.Steal, prev.Steal),
	}
}

func (s CPUSample) Total() float64 {
	return s.User + s.Nice + s.System + s.Idle + s.IOWait + s.IRQ + s.SoftIRQ + s.Steal
}

func (s CPUSample) Active() float64 { return s.Total() - s.Idle - s.IOWait }

// Percent is the share of active time, 0 if no time passed.
func (s CPUSample) Percent() float64 {
	total := s.Total()
	if total <= 0 {
		return 0
	}
	return 100 * s.Active() / total
}

func (s CPUSample) String() string { return fmt.Sprintf(`%.02f%%`, s.Percent()) }

// CPU keeps the previous counters so each Sample is the usage since the
// last one. The first sample covers the time since boot.
type CPU struct {
	src  Source
	prev cpu.TimesStat
}

func NewCPU(src Source) *CPU { return &CPU{src: src} }

func (c *CPU) Sample(ctx context.Context) (CPUSample, error) {
	if c == nil || c.src == nil {
		return CPUSample{}, errors.NilReceiver()
	}
	cur, err := c.src.CPUTimes(ctx)
	if err != nil {
		return CPUSample{}, err
	}
	s := DiffTimes(cur, c.prev)
	c.prev = cur
	return s, nil
}
