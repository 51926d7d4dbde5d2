package panels

import (
	"context"
	"log/slog"
	"time"

	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/panel"
	"github.com/srlehn/fbstat/rgb565"
	"github.com/srlehn/fbstat/stats"
	"github.com/srlehn/fbstat/trace"
)

var cpuSeries = []trace.Series{
	{Name: `user`, Color: rgb565.New(4, 90, 141)},
	{Name: `nice`, Color: rgb565.New(116, 169, 207)},
	{Name: `system`, Color: rgb565.New(241, 238, 246)},
}

// CPU traces the share of user, nice and system time since the last tick.
type CPU struct {
	trace *trace.Trace
	cpu   *stats.CPU
	log   logx.LoggerProvider
}

var _ Updater = (*CPU)(nil)

func NewCPU(cfg Config, src stats.Source) (*CPU, error) {
	tr, err := trace.New(trace.Config{
		Title:       `CPU`,
		Series:      cpuSeries,
		Width:       cfg.Width,
		TraceHeight: cfg.TraceHeight,
		GridHeight:  cfg.GridHeight,
		YPosition:   cfg.YPosition,
		Face:        cfg.face(),
	})
	if err != nil {
		return nil, err
	}
	return &CPU{trace: tr, cpu: stats.NewCPU(src), log: cfg.Logger}, nil
}

func (c *CPU) Panel() *panel.Panel { return c.trace.Panel }
func (c *CPU) Trace() *trace.Trace { return c.trace }

func (c *CPU) Update(ctx context.Context, now time.Time) error {
	s, err := c.cpu.Sample(ctx)
	if logx.IsErr(err, c.log, slog.LevelWarn, `panel`, `cpu`) {
		s = stats.CPUSample{}
	}
	c.trace.Update([]float64{s.User, s.Nice, s.System}, s.Total(), now)
	return nil
}
